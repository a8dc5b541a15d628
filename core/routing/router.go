package routing

import (
	"context"

	"github.com/anoideaopen/vmbind/core/refs"
	"github.com/anoideaopen/vmbind/core/runtime"
)

// Router defines the interface for validating and executing calls against
// the object model of a managed runtime.
type Router interface {
	// Check validates that the argument types resolve to some overload of
	// the class's method without invoking anything. It returns an error if
	// resolution fails.
	Check(ctx context.Context, class, method string, args ...runtime.Value) error

	// Construct resolves the argument types against the class's constructor
	// overloads and instantiates the class, returning a locally scoped
	// reference.
	Construct(ctx context.Context, class string, args ...runtime.Value) (refs.Ref, error)

	// Invoke resolves the argument types against the method's overloads on
	// the receiver's class and executes the call. A void method returns a
	// nil value.
	Invoke(ctx context.Context, recv refs.Ref, method string, args ...runtime.Value) (runtime.Value, error)

	// Classes returns the class names this router can route, in
	// registration order.
	Classes() []string
}
