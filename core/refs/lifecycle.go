package refs

import (
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
)

// ErrNotPromotable is returned when promotion is requested for a reference
// that is not locally scoped.
var ErrNotPromotable = errors.New("reference is not promotable")

// Lifecycle is the external collaborator owning reference lifetimes. The
// library never counts references itself; it only forwards promotion and
// deletion requests across this boundary.
type Lifecycle interface {
	// Promote turns a locally scoped reference into a globally scoped one.
	Promote(r Ref) (Ref, error)

	// Delete releases the reference.
	Delete(r Ref) error
}

// Promote asks the lifecycle to promote a local reference to global scope.
// A reference that is already global is returned unchanged; anything else
// that is not local fails with ErrNotPromotable.
func Promote(lc Lifecycle, r Ref) (Ref, error) {
	switch r.Shape {
	case descriptor.ShapeGlobal:
		return r, nil
	case descriptor.ShapeLocal:
		return lc.Promote(r)
	default:
		return Ref{}, fmt.Errorf("%w: shape %s", ErrNotPromotable, r.Shape)
	}
}
