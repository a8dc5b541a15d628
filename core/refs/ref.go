// Package refs models the ownership wrappers a runtime reference travels in
// and the lifetime boundary around them. Reference counting, promotion, and
// deletion are performed by an external Lifecycle collaborator; this package
// only fixes the shapes and the promotion contract.
package refs

import (
	"github.com/anoideaopen/vmbind/core/descriptor"
	"github.com/google/uuid"
)

// Ref is a handle to one runtime object: an opaque identity, the declared
// class name, and the ownership shape the handle currently has. Two refs
// with different shapes but the same class are interchangeable at any
// parameter position.
type Ref struct {
	Handle uuid.UUID
	Class  string
	Shape  descriptor.Shape
}

// NewLocal wraps a handle as a locally scoped reference to the named class.
func NewLocal(handle uuid.UUID, class string) Ref {
	return Ref{Handle: handle, Class: class, Shape: descriptor.ShapeLocal}
}

// NewGlobal wraps a handle as a globally scoped reference to the named class.
func NewGlobal(handle uuid.UUID, class string) Ref {
	return Ref{Handle: handle, Class: class, Shape: descriptor.ShapeGlobal}
}

// Tag returns the static type of the reference as seen by resolution.
func (r Ref) Tag() descriptor.TypeTag {
	return descriptor.TypeTag{Kind: descriptor.KindObject, Class: r.Class, Shape: r.Shape}
}

// IsZero reports whether the ref carries no handle.
func (r Ref) IsZero() bool {
	return r.Handle == uuid.Nil
}
