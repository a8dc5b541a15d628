package resolve

import (
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
)

// Permutations returns the size of the overload's permutation space: the
// product of its parameters' proxy-set sizes. An overload with zero
// parameters has exactly one (empty) permutation, not zero.
func Permutations(ov descriptor.Overload) int {
	count := 1
	for _, p := range ov.Params {
		count *= len(p.Proxies)
	}

	return count
}

// DecodePermutation decodes a permutation index into one chosen
// representation per parameter. The index is mixed-radix with each
// parameter's own proxy-set size as its radix and parameter 0 as the most
// significant digit, so every index in [0, Permutations(ov)) maps to exactly
// one combination and every combination has exactly one index.
//
// It panics if idx is outside the overload's permutation space; indices are
// produced inside this package and never cross a trust boundary.
func DecodePermutation(ov descriptor.Overload, idx int) []descriptor.TypeTag {
	if idx < 0 || idx >= Permutations(ov) {
		panic(fmt.Sprintf("resolve: permutation index %d out of range for %s", idx, ov.Signature()))
	}

	reps := make([]descriptor.TypeTag, len(ov.Params))
	for i := len(ov.Params) - 1; i >= 0; i-- {
		radix := len(ov.Params[i].Proxies)
		reps[i] = ov.Params[i].Proxies[idx%radix]
		idx /= radix
	}

	return reps
}

// EncodePermutation is the inverse of DecodePermutation: it composes one
// proxy choice per parameter (digits[i] indexes parameter i's proxy set)
// back into a permutation index.
func EncodePermutation(ov descriptor.Overload, digits []int) int {
	if len(digits) != len(ov.Params) {
		panic(fmt.Sprintf("resolve: %d digits for %d parameters", len(digits), len(ov.Params)))
	}

	idx := 0
	for i, d := range digits {
		radix := len(ov.Params[i].Proxies)
		if d < 0 || d >= radix {
			panic(fmt.Sprintf("resolve: digit %d out of range for parameter %d", d, i))
		}
		idx = idx*radix + d
	}

	return idx
}
