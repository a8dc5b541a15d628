// Package resolve implements deterministic signature resolution over an
// overload set: given the overloads declared for a method and the concrete
// types supplied at a call site, it selects the first viable overload in
// declaration order and, within that overload, the first viable combination
// of parameter representations. Resolution is a pure function of its inputs;
// it holds no state, performs no I/O, and its results may be memoized freely
// by callers.
package resolve

import (
	"errors"

	"github.com/anoideaopen/vmbind/core/descriptor"
)

// ErrNoViableOverload is returned by the routing layer when no overload and
// permutation combination matches the supplied argument types. It signals
// that the call shape is not supported; it is never a crash and never a
// silently wrong overload.
var ErrNoViableOverload = errors.New("no viable overload")

// NoSelection is the index sentinel carried by a Result when resolution
// found no match.
const NoSelection = -1

// Result is the outcome of a resolution: the index of the selected overload
// within its declaration-ordered set and the index of the selected
// permutation within that overload's own permutation space, or NoSelection
// for both when nothing matched. Results are consumed immediately by the
// invocation dispatcher and never stored.
type Result struct {
	Overload    int
	Permutation int
}

// NoMatch is the no-selection result.
var NoMatch = Result{Overload: NoSelection, Permutation: NoSelection}

// Selected reports whether the result identifies an overload.
func (r Result) Selected() bool {
	return r.Overload != NoSelection
}

// Reps returns the chosen representation per parameter, resolved against
// the overload set the result came from, or nil for a no-match result.
func (r Result) Reps(overloads []descriptor.Overload) []descriptor.TypeTag {
	if !r.Selected() {
		return nil
	}

	return DecodePermutation(overloads[r.Overload], r.Permutation)
}

// Resolve scans overloads in declaration order and returns the first viable
// (overload, permutation) pair for the supplied argument types, or NoMatch.
//
// An overload is viable iff its arity equals len(args) and at least one of
// its permutations matches every argument under MatchParam. The permutation
// index is always resolved within the selected overload's own permutation
// space. A zero-parameter overload has exactly one empty permutation, which
// is viable iff args is empty. An empty overload set never matches.
func Resolve(overloads []descriptor.Overload, args []descriptor.TypeTag) Result {
	for oi, ov := range overloads {
		if ov.Arity() != len(args) {
			continue
		}

		count := Permutations(ov)
		for pi := 0; pi < count; pi++ {
			if permutationViable(DecodePermutation(ov, pi), args) {
				return Result{Overload: oi, Permutation: pi}
			}
		}
	}

	return NoMatch
}
