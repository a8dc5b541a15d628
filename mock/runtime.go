// Package mock provides an in-memory managed runtime for tests and for
// consumers that want to exercise routing without a real runtime attached.
// It implements both the invocation boundary (runtime.Invoker) and the
// reference lifetime boundary (refs.Lifecycle), and records every call it
// receives so tests can assert which overload and permutation resolution
// selected.
package mock

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/refs"
	"github.com/anoideaopen/vmbind/core/runtime"
	"github.com/google/uuid"
)

var (
	// ErrObjectNotFound is returned when a reference's handle is not in the
	// heap.
	ErrObjectNotFound = errors.New("object not found")

	// ErrNoBehavior is returned when a method is invoked on a class without
	// a registered behavior for it.
	ErrNoBehavior = errors.New("no behavior registered")
)

// Object is one instance on the mock heap.
type Object struct {
	Handle uuid.UUID
	Class  string
	Fields map[string]runtime.Value
}

// MethodFunc is the behavior of one method. It receives the instance, the
// selection resolution produced, and the call-site arguments.
type MethodFunc func(obj *Object, sel runtime.Selection, args []runtime.Value) (runtime.Value, error)

// CallRecord is one invocation the runtime received.
type CallRecord struct {
	Class       string
	Method      string // "<init>" for constructors
	Overload    int
	Permutation int
}

// Runtime is the in-memory fake. Not safe for concurrent use.
type Runtime struct {
	heap    map[uuid.UUID]*Object
	methods map[string]map[string]MethodFunc
	calls   []CallRecord
}

// NewRuntime creates an empty mock runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		heap:    make(map[uuid.UUID]*Object),
		methods: make(map[string]map[string]MethodFunc),
	}
}

// RegisterMethod installs the behavior of class.method. Constructors
// register under the name "<init>"; classes whose constructors have no
// registered behavior are instantiated with an empty field set.
func (r *Runtime) RegisterMethod(class, method string, fn MethodFunc) {
	if _, ok := r.methods[class]; !ok {
		r.methods[class] = make(map[string]MethodFunc)
	}
	r.methods[class][method] = fn
}

// NewObject implements runtime.Invoker.
func (r *Runtime) NewObject(_ context.Context, class string, sel runtime.Selection, args []runtime.Value) (refs.Ref, error) {
	obj := &Object{
		Handle: uuid.New(),
		Class:  class,
		Fields: make(map[string]runtime.Value),
	}

	r.record(class, "<init>", sel)

	if fn, ok := r.behavior(class, "<init>"); ok {
		if _, err := fn(obj, sel, args); err != nil {
			return refs.Ref{}, err
		}
	}

	r.heap[obj.Handle] = obj

	return refs.NewLocal(obj.Handle, class), nil
}

// CallMethod implements runtime.Invoker.
func (r *Runtime) CallMethod(_ context.Context, recv refs.Ref, method string, sel runtime.Selection, args []runtime.Value) (runtime.Value, error) {
	obj, ok := r.heap[recv.Handle]
	if !ok {
		return nil, fmt.Errorf("%w: handle %s", ErrObjectNotFound, recv.Handle)
	}

	r.record(obj.Class, method, sel)

	fn, ok := r.behavior(obj.Class, method)
	if !ok {
		return nil, fmt.Errorf("%w: '%s.%s'", ErrNoBehavior, obj.Class, method)
	}

	return fn(obj, sel, args)
}

// Promote implements refs.Lifecycle.
func (r *Runtime) Promote(ref refs.Ref) (refs.Ref, error) {
	if _, ok := r.heap[ref.Handle]; !ok {
		return refs.Ref{}, fmt.Errorf("%w: handle %s", ErrObjectNotFound, ref.Handle)
	}

	return refs.NewGlobal(ref.Handle, ref.Class), nil
}

// Delete implements refs.Lifecycle.
func (r *Runtime) Delete(ref refs.Ref) error {
	if _, ok := r.heap[ref.Handle]; !ok {
		return fmt.Errorf("%w: handle %s", ErrObjectNotFound, ref.Handle)
	}

	delete(r.heap, ref.Handle)

	return nil
}

// Object returns the instance behind a reference.
func (r *Runtime) Object(ref refs.Ref) (*Object, bool) {
	obj, ok := r.heap[ref.Handle]
	return obj, ok
}

// Calls returns every recorded invocation in order.
func (r *Runtime) Calls() []CallRecord {
	calls := make([]CallRecord, len(r.calls))
	copy(calls, r.calls)

	return calls
}

func (r *Runtime) behavior(class, method string) (MethodFunc, bool) {
	fns, ok := r.methods[class]
	if !ok {
		return nil, false
	}

	fn, ok := fns[method]

	return fn, ok
}

func (r *Runtime) record(class, method string, sel runtime.Selection) {
	r.calls = append(r.calls, CallRecord{
		Class:       class,
		Method:      method,
		Overload:    sel.Overload,
		Permutation: sel.Permutation,
	})
}
