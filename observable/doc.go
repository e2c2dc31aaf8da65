// SPDX-License-Identifier: MIT

// Package observable is the static catalog of jet observables.
//
// Each entry pairs immutable Metadata (name, IRC safety flag, category,
// description, dependencies, cost) with a compute function over *jet.Jet. The
// catalog is a plain name → entry map; there is no observable interface
// hierarchy and DependsOn is informational: every compute function is
// self-contained.
//
// Resolve orders a dependency closure depth-first (dependencies before
// dependents) and Validate proves the whole catalog is closed and acyclic.
//
// Parameterised observables (the SoftDrop proxies) take their parameters
// from registry options:
//
//	reg := observable.New(observable.WithSoftDrop(grooming.Params{ZCut: 0.2, Beta: 1, R0: 0.8}))
//	vals, err := reg.Evaluate(j, "pt", "mass", "softdrop_pass_fraction")
//
// delta_r is catalogued for completeness but relates two jets; Evaluate on a
// single jet rejects it with ErrPairObservable.
package observable
