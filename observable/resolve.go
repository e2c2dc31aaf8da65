// SPDX-License-Identifier: MIT
// Package: observable
//
// Resolve walks DependsOn edges depth-first with three-colour marking:
// white (unvisited), gray (on the current path), black (done). Reaching a
// gray node is a cycle. Dependencies are emitted in post-order, so every
// name appears after everything it depends on.
//
// Complexity: O(V + E) over the dependency closure.

package observable

import (
	"fmt"
)

const (
	white = iota
	gray
	black
)

// isBase reports whether dep names a base quantity rather than an observable.
func isBase(dep string) bool {
	return dep == BaseFourVector || dep == BaseConstituents
}

type resolver struct {
	reg   *Registry
	state map[string]int
	order []string
}

// Resolve returns the dependency closure of names in evaluation order. Base
// quantities are not listed.
//
// Errors: ErrUnknown for an unknown requested name, ErrDependency for a
// dangling DependsOn entry, ErrCycleDetected for a cycle.
func (r *Registry) Resolve(names ...string) ([]string, error) {
	rs := &resolver{
		reg:   r,
		state: make(map[string]int, len(r.names)),
		order: make([]string, 0, len(names)),
	}
	for _, n := range names {
		if _, err := r.Lookup(n); err != nil {
			return nil, err
		}
		if err := rs.visit(n); err != nil {
			return nil, err
		}
	}

	return rs.order, nil
}

func (rs *resolver) visit(name string) error {
	switch rs.state[name] {
	case gray:
		return fmt.Errorf("%q: %w", name, ErrCycleDetected)
	case black:
		return nil
	}
	rs.state[name] = gray

	ob := rs.reg.entries[name]
	for _, dep := range ob.DependsOn {
		if isBase(dep) {
			continue
		}
		if _, ok := rs.reg.entries[dep]; !ok {
			return fmt.Errorf("%q depends on %q: %w", name, dep, ErrDependency)
		}
		if err := rs.visit(dep); err != nil {
			return err
		}
	}

	rs.state[name] = black
	rs.order = append(rs.order, name)

	return nil
}

// Validate checks that the whole catalog resolves: every dependency names an
// observable or a base quantity and no cycle exists.
func (r *Registry) Validate() error {
	_, err := r.Resolve(r.names...)

	return err
}
