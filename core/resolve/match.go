package resolve

import "github.com/anoideaopen/vmbind/core/descriptor"

// MatchParam decides whether one supplied argument type satisfies one chosen
// parameter representation. Two object references match iff their declared
// class names are equal; the ownership shape either side arrives in is
// irrelevant. Matching is by name, never by runtime subtype relation: a
// reference to a subclass of the declared class does not match. Everything
// else (primitives, arrays, native string representations) matches only its
// own kind, rank, and element, after stripping ownership shape.
func MatchParam(chosen, supplied descriptor.TypeTag) bool {
	if chosen.IsObjectRef() && supplied.IsObjectRef() {
		return chosen.Class == supplied.Class
	}

	return chosen.Strip() == supplied.Strip()
}

// permutationViable reports whether every parameter of the decoded
// permutation matches its corresponding supplied argument type. Arity is the
// caller's concern.
func permutationViable(reps, args []descriptor.TypeTag) bool {
	for i, rep := range reps {
		if !MatchParam(rep, args[i]) {
			return false
		}
	}

	return true
}
