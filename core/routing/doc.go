// Package routing defines the Router interface for validating and executing
// calls against a managed-runtime object model.
//
// A Router sits between native callers and the runtime: it owns the class
// metadata for some set of classes, resolves each call site's argument types
// to a specific overload and parameter-representation permutation, and
// forwards the resolved selection to the runtime's invoker. Validation via
// [Router.Check] runs resolution without invoking anything, which lets
// callers reject unsupported call shapes before any runtime work happens.
//
// Router implementations include:
//   - [github.com/anoideaopen/vmbind/core/routing/dispatch]: the default
//     implementation backed by a metadata registry and the resolution
//     engine in [github.com/anoideaopen/vmbind/core/resolve].
//   - [github.com/anoideaopen/vmbind/core/routing/mux]: combines multiple
//     routers, routing by class name.
//
// Resolution failure is reported as a typed error
// ([github.com/anoideaopen/vmbind/core/resolve.ErrNoViableOverload]); it is
// never a panic and never a silently wrong overload.
package routing
