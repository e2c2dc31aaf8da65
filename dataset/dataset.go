// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jetobsmc/canon"
	"github.com/katalvlaran/jetobsmc/jet"
)

// Format names the meaning of each four-number row.
type Format string

// Row formats.
const (
	FourMomentum Format = "p4"
	Detector     Format = "detector"
)

// Encoding names an on-disk serialisation.
type Encoding string

// Encodings.
const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// Dataset is a named list of jets.
type Dataset struct {
	Name   string        `json:"name" yaml:"name"`
	Format Format        `json:"format" yaml:"format"`
	Jets   [][][]float64 `json:"jets" yaml:"jets,flow"`
}

// Validate checks the format and that every row has four columns.
func (d *Dataset) Validate() error {
	switch d.Format {
	case FourMomentum, Detector:
	default:
		return fmt.Errorf("%q: %w", d.Format, ErrFormat)
	}
	for i, rows := range d.Jets {
		if err := jet.ValidateRows(rows); err != nil {
			return fmt.Errorf("jet %d: %w", i, err)
		}
	}

	return nil
}

// Build converts every jet. opts apply only to detector rows.
func (d *Dataset) Build(opts ...canon.Option) ([]*jet.Jet, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	out := make([]*jet.Jet, len(d.Jets))
	var err error
	for i, rows := range d.Jets {
		if d.Format == Detector {
			out[i], err = jet.FromDetector(rows, opts...)
		} else {
			out[i], err = jet.New(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("jet %d: %w", i, err)
		}
	}

	return out, nil
}

// EncodingOf maps a file extension to its encoding.
func EncodingOf(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrEncoding)
	}
}

// Decode reads a dataset in the given encoding and validates it.
func Decode(r io.Reader, enc Encoding) (*Dataset, error) {
	var d Dataset
	switch enc {
	case JSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("dataset: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", enc, ErrEncoding)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Encode writes d in the given encoding.
func Encode(w io.Writer, d *Dataset, enc Encoding) error {
	switch enc {
	case JSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(d)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(d); err != nil {
			return err
		}
		return e.Close()
	default:
		return fmt.Errorf("%q: %w", enc, ErrEncoding)
	}
}

// Load reads the dataset at path, choosing the encoding by extension.
func Load(path string) (*Dataset, error) {
	enc, err := EncodingOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), enc)
}

// Save validates d and writes it to path, choosing the encoding by extension.
func Save(path string, d *Dataset) error {
	enc, err := EncodingOf(path)
	if err != nil {
		return err
	}
	if err = d.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, d, enc); err != nil {
		return fmt.Errorf("dataset: encode %s: %w", path, err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
