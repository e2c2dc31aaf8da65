// SPDX-License-Identifier: MIT

package observable

import "errors"

var (
	// ErrUnknown indicates a name that is not in the registry.
	ErrUnknown = errors.New("observable: unknown observable")

	// ErrPairObservable indicates a two-jet observable evaluated on one jet.
	ErrPairObservable = errors.New("observable: observable needs a pair of jets")

	// ErrDependency indicates a DependsOn entry that resolves to nothing.
	ErrDependency = errors.New("observable: unresolved dependency")

	// ErrCycleDetected indicates a dependency cycle in the catalog.
	ErrCycleDetected = errors.New("observable: dependency cycle detected")
)
