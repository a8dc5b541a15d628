package runtime

import (
	"context"

	"github.com/anoideaopen/vmbind/core/descriptor"
	"github.com/anoideaopen/vmbind/core/refs"
)

// Selection carries a resolution outcome across the invocation boundary:
// which overload was selected, which permutation within it, the chosen
// representation per parameter, and the overload's return descriptor. The
// Invoker uses it to marshal arguments and materialize the return value;
// it never second-guesses the selection.
type Selection struct {
	Overload    int
	Permutation int
	Reps        []descriptor.TypeTag
	Ret         descriptor.ReturnDescriptor
}

// Invoker is the external collaborator that executes a resolved call against
// the managed runtime. Thread attachment, argument marshalling, and return
// conversion are entirely its concern.
type Invoker interface {
	// NewObject runs the selected constructor overload and returns a
	// locally scoped reference to the new instance.
	NewObject(ctx context.Context, class string, sel Selection, args []Value) (refs.Ref, error)

	// CallMethod runs the selected method overload on the receiver. A void
	// method returns a nil Value.
	CallMethod(ctx context.Context, recv refs.Ref, method string, sel Selection, args []Value) (Value, error)
}
