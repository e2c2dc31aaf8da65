// SPDX-License-Identifier: MIT

package observable

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/jetobsmc/jet"
)

// Category groups observables by what they describe.
type Category string

// Categories.
const (
	Kinematic    Category = "kinematic"
	Shape        Category = "shape"
	Substructure Category = "substructure"
)

// Base quantities an observable may depend on without being an observable.
const (
	BaseFourVector   = "fourvector"
	BaseConstituents = "constituents"
)

// Metadata describes one observable.
type Metadata struct {
	Name        string   `json:"name" yaml:"name"`
	IRCSafe     bool     `json:"irc_safe" yaml:"irc_safe"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	DependsOn   []string `json:"depends_on" yaml:"depends_on"`
	Complexity  string   `json:"complexity" yaml:"complexity"`
	// Arity is the number of jets the observable consumes (1 or 2).
	Arity int `json:"arity" yaml:"arity"`
}

// Func computes a single-jet observable.
type Func func(*jet.Jet) float64

// Observable is a catalog entry.
type Observable struct {
	Metadata
	compute Func
}

// Compute evaluates the observable on j.
//
// Errors: ErrPairObservable for two-jet entries, jet.ErrNilJet for nil j.
func (o Observable) Compute(j *jet.Jet) (float64, error) {
	if o.compute == nil {
		return 0, fmt.Errorf("%s: %w", o.Name, ErrPairObservable)
	}
	if j == nil {
		return 0, fmt.Errorf("%s: %w", o.Name, jet.ErrNilJet)
	}

	return o.compute(j), nil
}

// Registry maps names to observables. It is read-only after New and safe for
// concurrent use.
type Registry struct {
	entries map[string]Observable
	names   []string // sorted
}

// New builds the catalog with the given options.
func New(opts ...Option) *Registry {
	o := gatherOptions(opts...)
	list := catalog(o)

	r := &Registry{
		entries: make(map[string]Observable, len(list)),
		names:   make([]string, 0, len(list)),
	}
	for _, ob := range list {
		r.entries[ob.Name] = ob
		r.names = append(r.names, ob.Name)
	}
	slices.Sort(r.names)

	return r
}

// Len returns the number of catalogued observables.
func (r *Registry) Len() int { return len(r.names) }

// Names returns every observable name in lexical order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// SingleJetNames returns the names evaluable on one jet, in lexical order.
func (r *Registry) SingleJetNames() []string {
	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		if r.entries[n].Arity == 1 {
			out = append(out, n)
		}
	}

	return out
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name string) (Observable, error) {
	ob, ok := r.entries[name]
	if !ok {
		return Observable{}, fmt.Errorf("%q: %w", name, ErrUnknown)
	}

	return ob, nil
}

// Metadata returns a copy of the metadata for name.
func (r *Registry) Metadata(name string) (Metadata, error) {
	ob, err := r.Lookup(name)
	if err != nil {
		return Metadata{}, err
	}
	md := ob.Metadata
	md.DependsOn = slices.Clone(md.DependsOn)

	return md, nil
}

// ByCategory returns the metadata of every observable in c, in name order.
func (r *Registry) ByCategory(c Category) []Metadata {
	var out []Metadata
	for _, n := range r.names {
		if r.entries[n].Category == c {
			md, _ := r.Metadata(n)
			out = append(out, md)
		}
	}

	return out
}

// Evaluate computes the named observables on j, in the order given. With no
// names it evaluates SingleJetNames().
//
// Errors: ErrUnknown, ErrPairObservable, jet.ErrNilJet.
func (r *Registry) Evaluate(j *jet.Jet, names ...string) ([]float64, error) {
	if j == nil {
		return nil, fmt.Errorf("observable.Evaluate: %w", jet.ErrNilJet)
	}
	if len(names) == 0 {
		names = r.SingleJetNames()
	}

	out := make([]float64, len(names))
	for i, n := range names {
		ob, err := r.Lookup(n)
		if err != nil {
			return nil, err
		}
		if out[i], err = ob.Compute(j); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Check verifies every name exists and is evaluable on one jet.
func (r *Registry) Check(names ...string) error {
	for _, n := range names {
		ob, err := r.Lookup(n)
		if err != nil {
			return err
		}
		if ob.Arity != 1 {
			return fmt.Errorf("%q: %w", n, ErrPairObservable)
		}
	}

	return nil
}
