// Package compose merges stored override records into a single override.
//
// An override maps a package set to the derivations it adds or replaces.
// Overrides are layered in order: each sees the packages produced by the ones
// before it, and wins over them on collisions.
package compose

import (
	"go.uber.org/multierr"
)

// Derivation is a buildable package description. It is opaque to this package
type Derivation = any

// PackageSet maps project identifiers to derivations
type PackageSet map[string]Derivation

// Override produces the derivations to add on top of super.
//
// Self is the final package set, after all overrides have been applied.
// A non-nil error comes with the derivations that could still be built.
type Override func(self, super PackageSet) (PackageSet, error)

// Union of two package sets: right wins on collisions
func Union(left, right PackageSet) PackageSet {
	res := make(PackageSet, len(left)+len(right))
	for k, v := range left {
		res[k] = v
	}
	for k, v := range right {
		res[k] = v
	}
	return res
}

// Identity adds no package
func Identity(_, _ PackageSet) (PackageSet, error) {
	return PackageSet{}, nil
}

// Layer f then g:
//
//	h(self, super) = f(self, super) ∪ g(self, super ∪ f(self, super))
//
// g sees what f produced and wins on collisions. Errors from both are combined.
func Layer(f, g Override) Override {
	return func(self, super PackageSet) (PackageSet, error) {
		fromF, errF := f(self, super)
		fromG, errG := g(self, Union(super, fromF))
		return Union(fromF, fromG), multierr.Append(errF, errG)
	}
}
