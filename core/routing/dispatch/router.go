package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
	"github.com/anoideaopen/vmbind/core/logger"
	"github.com/anoideaopen/vmbind/core/metadata"
	"github.com/anoideaopen/vmbind/core/refs"
	"github.com/anoideaopen/vmbind/core/resolve"
	"github.com/anoideaopen/vmbind/core/routing"
	"github.com/anoideaopen/vmbind/core/runtime"
	"github.com/anoideaopen/vmbind/core/stringsx"
	"github.com/anoideaopen/vmbind/core/telemetry"
)

var (
	// ErrMethodNotFound is returned when the class declares no method with
	// the requested name.
	ErrMethodNotFound = errors.New("method not found")

	// ErrMethodDisabled is returned when the requested method is present
	// but disabled by router configuration.
	ErrMethodDisabled = errors.New("method is disabled")

	// ErrClassNotSupported is returned when the configured class loader
	// cannot supply the requested class.
	ErrClassNotSupported = errors.New("class is not supported by the loader")
)

// RouterConfig holds configuration options for the dispatch router.
type RouterConfig struct {
	Loader          metadata.Loader           // Class visibility gate; nil means metadata.DefaultLoader.
	DisabledMethods []string                  // Method names that must not be invoked.
	Tracing         *telemetry.TracingHandler // Span source for dispatches; nil disables tracing.
}

// Router is the default routing.Router: a metadata registry for what the
// classes look like, the resolution engine for which overload a call site
// hits, and a runtime.Invoker collaborator for the call itself.
type Router struct {
	registry *metadata.Registry
	invoker  runtime.Invoker
	cfg      RouterConfig
}

var _ routing.Router = (*Router)(nil)

// NewRouter creates a dispatch router over the given registry and invoker.
func NewRouter(registry *metadata.Registry, invoker runtime.Invoker, cfg RouterConfig) *Router {
	if cfg.Loader == nil {
		cfg.Loader = metadata.DefaultLoader
	}
	if cfg.Tracing == nil {
		cfg.Tracing = telemetry.NewNoopTracingHandler()
	}

	return &Router{
		registry: registry,
		invoker:  invoker,
		cfg:      cfg,
	}
}

// Check validates the provided argument types for the specified method
// without invoking anything. It returns an error if the method is disabled,
// the class is not visible, the method does not exist, or no overload is
// viable.
func (r *Router) Check(_ context.Context, class, method string, args ...runtime.Value) error {
	_, err := r.resolveMethod(class, method, args)
	return err
}

// Construct resolves args against the class's constructor overloads and
// asks the invoker to instantiate the class.
func (r *Router) Construct(ctx context.Context, class string, args ...runtime.Value) (refs.Ref, error) {
	meta, err := r.lookupClass(class)
	if err != nil {
		return refs.Ref{}, err
	}

	sel, err := r.resolveOverloads(meta.Constructors(), args, class, "<init>")
	if err != nil {
		return refs.Ref{}, err
	}

	ctx, span := r.cfg.Tracing.StartNewSpan(ctx, "vmbind.Construct")
	defer span.End()
	span.SetAttributes(
		telemetry.ClassAttribute(class),
		telemetry.OverloadAttribute(sel.Overload),
		telemetry.PermutationAttribute(sel.Permutation),
	)

	logger.Logger().Debugf("dispatch: new %s overload %d permutation %d",
		class, sel.Overload, sel.Permutation)

	return r.invoker.NewObject(ctx, class, sel, args)
}

// Invoke resolves args against the method's overloads on the receiver's
// class and executes the call through the invoker.
func (r *Router) Invoke(ctx context.Context, recv refs.Ref, method string, args ...runtime.Value) (runtime.Value, error) {
	sel, err := r.resolveMethod(recv.Class, method, args)
	if err != nil {
		return nil, err
	}

	ctx, span := r.cfg.Tracing.StartNewSpan(ctx, "vmbind.Invoke")
	defer span.End()
	span.SetAttributes(
		telemetry.ClassAttribute(recv.Class),
		telemetry.MethodAttribute(method),
		telemetry.OverloadAttribute(sel.Overload),
		telemetry.PermutationAttribute(sel.Permutation),
	)

	logger.Logger().Debugf("dispatch: call %s.%s overload %d permutation %d",
		recv.Class, method, sel.Overload, sel.Permutation)

	return r.invoker.CallMethod(ctx, recv, method, sel, args)
}

// Classes returns the routable class names in registration order.
func (r *Router) Classes() []string {
	return r.registry.Classes()
}

func (r *Router) lookupClass(class string) (*metadata.Class, error) {
	if !r.cfg.Loader.Supports(class) {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotSupported, class)
	}

	return r.registry.Class(class)
}

func (r *Router) resolveMethod(class, method string, args []runtime.Value) (runtime.Selection, error) {
	if stringsx.OneOf(method, r.cfg.DisabledMethods...) {
		return runtime.Selection{}, fmt.Errorf("%w: '%s'", ErrMethodDisabled, method)
	}

	meta, err := r.lookupClass(class)
	if err != nil {
		return runtime.Selection{}, err
	}

	overloads, ok := meta.Method(method)
	if !ok {
		return runtime.Selection{}, fmt.Errorf("%w: '%s.%s'", ErrMethodNotFound, class, method)
	}

	return r.resolveOverloads(overloads, args, class, method)
}

// resolveOverloads runs resolution and packages the outcome as a selection
// for the invocation boundary.
func (r *Router) resolveOverloads(overloads []descriptor.Overload, args []runtime.Value, class, method string) (runtime.Selection, error) {
	tags := runtime.Tags(args...)

	result := resolve.Resolve(overloads, tags)
	if !result.Selected() {
		return runtime.Selection{}, fmt.Errorf("%w: '%s.%s' with arguments %s",
			resolve.ErrNoViableOverload, class, method, renderTags(tags))
	}

	ov := overloads[result.Overload]

	return runtime.Selection{
		Overload:    result.Overload,
		Permutation: result.Permutation,
		Reps:        resolve.DecodePermutation(ov, result.Permutation),
		Ret:         ov.Ret,
	}, nil
}

func renderTags(tags []descriptor.TypeTag) string {
	out := "("
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += tag.String()
	}

	return out + ")"
}
