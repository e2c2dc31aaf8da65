// SPDX-License-Identifier: MIT

// Package config loads jetobs settings from defaults, an optional YAML file
// and JETOBS_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/jetobsmc/canon"
	"github.com/katalvlaran/jetobsmc/grooming"
)

// EnvPrefix prefixes every environment override, e.g. JETOBS_LOG_LEVEL.
const EnvPrefix = "JETOBS"

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved configuration.
type Config struct {
	Workers     int
	Bins        int
	Observables []string
	Log         LogConfig
	DB          DBConfig
	SoftDrop    grooming.Params
	Canon       CanonConfig
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string
	Format string
}

// DBConfig locates the results store; an empty path disables it.
type DBConfig struct {
	Path string
}

// CanonConfig tunes detector-row canonicalization.
type CanonConfig struct {
	Tolerance float64
}

// Load resolves the configuration. An empty path searches for jetobs.yaml in
// "." and "./config" and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("jetobs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{
		Workers:     v.GetInt("workers"),
		Bins:        v.GetInt("bins"),
		Observables: splitList(v.GetStringSlice("observables")),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		SoftDrop: grooming.Params{
			ZCut: v.GetFloat64("softdrop.zcut"),
			Beta: v.GetFloat64("softdrop.beta"),
			R0:   v.GetFloat64("softdrop.r0"),
		},
		Canon: CanonConfig{Tolerance: v.GetFloat64("canon.tolerance")},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("bins", 40)
	v.SetDefault("observables", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.path", "")

	v.SetDefault("softdrop.zcut", grooming.DefaultZCut)
	v.SetDefault("softdrop.beta", grooming.DefaultBeta)
	v.SetDefault("softdrop.r0", grooming.DefaultR0)

	v.SetDefault("canon.tolerance", canon.DefaultTolerance)
}

// splitList accepts both YAML lists and comma-separated environment values.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// Validate checks ranges.
func (c *Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("workers = %d: %w", c.Workers, ErrInvalid)
	case c.Bins <= 0:
		return fmt.Errorf("bins = %d: %w", c.Bins, ErrInvalid)
	case c.SoftDrop.R0 <= 0:
		return fmt.Errorf("softdrop.r0 = %g: %w", c.SoftDrop.R0, ErrInvalid)
	case c.SoftDrop.ZCut < 0:
		return fmt.Errorf("softdrop.zcut = %g: %w", c.SoftDrop.ZCut, ErrInvalid)
	case !(c.Canon.Tolerance >= 0) || math.IsInf(c.Canon.Tolerance, 0):
		return fmt.Errorf("canon.tolerance = %g: %w", c.Canon.Tolerance, ErrInvalid)
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("log.format = %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// CanonOptions returns the canonicalization options the settings imply.
func (c *Config) CanonOptions() []canon.Option {
	if c.Canon.Tolerance == canon.DefaultTolerance {
		return nil
	}

	return []canon.Option{canon.WithTolerance(c.Canon.Tolerance)}
}
