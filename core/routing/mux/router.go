package mux

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/refs"
	"github.com/anoideaopen/vmbind/core/routing"
	"github.com/anoideaopen/vmbind/core/runtime"
)

var (
	// ErrClassAlreadyDefined is returned when two routers route the same
	// class.
	ErrClassAlreadyDefined = errors.New("class has already been defined")

	// ErrUnsupportedClass is returned when no router routes the requested
	// class.
	ErrUnsupportedClass = errors.New("unsupported class")
)

// Router is a multiplexer that routes calls to the router owning the class.
type Router struct {
	classRouter map[string]routing.Router // Class name -> Router.
	order       []string
}

// NewRouter creates a mux over the provided routers. It returns an error if
// any class is routed by more than one of them.
func NewRouter(routers ...routing.Router) (*Router, error) {
	r := &Router{
		classRouter: make(map[string]routing.Router),
	}

	for _, router := range routers {
		for _, class := range router.Classes() {
			if _, ok := r.classRouter[class]; ok {
				return nil, fmt.Errorf("%w: '%s'", ErrClassAlreadyDefined, class)
			}

			r.classRouter[class] = router
			r.order = append(r.order, class)
		}
	}

	return r, nil
}

// Check validates the call against the router owning the class.
func (r *Router) Check(ctx context.Context, class, method string, args ...runtime.Value) error {
	router, err := r.route(class)
	if err != nil {
		return err
	}

	return router.Check(ctx, class, method, args...)
}

// Construct instantiates the class through the router owning it.
func (r *Router) Construct(ctx context.Context, class string, args ...runtime.Value) (refs.Ref, error) {
	router, err := r.route(class)
	if err != nil {
		return refs.Ref{}, err
	}

	return router.Construct(ctx, class, args...)
}

// Invoke executes the method through the router owning the receiver's class.
func (r *Router) Invoke(ctx context.Context, recv refs.Ref, method string, args ...runtime.Value) (runtime.Value, error) {
	router, err := r.route(recv.Class)
	if err != nil {
		return nil, err
	}

	return router.Invoke(ctx, recv, method, args...)
}

// Classes returns every routed class name in registration order.
func (r *Router) Classes() []string {
	classes := make([]string, len(r.order))
	copy(classes, r.order)

	return classes
}

func (r *Router) route(class string) (routing.Router, error) {
	router, ok := r.classRouter[class]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedClass, class)
	}

	return router, nil
}
