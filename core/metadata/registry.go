package metadata

import (
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/logger"
)

var (
	// ErrClassAlreadyDefined is returned when a registry is built with two
	// classes sharing a name.
	ErrClassAlreadyDefined = errors.New("class has already been defined")

	// ErrClassNotFound is returned when a class name is not present in the
	// registry.
	ErrClassNotFound = errors.New("class not found")
)

// Registry is a process-wide, read-only set of class metadata. It is built
// once, typically at startup, and never mutated afterwards; concurrent
// readers need no synchronization.
type Registry struct {
	order   []string
	classes map[string]*Class
}

// NewRegistry builds a registry from the given classes. Duplicate class
// names are rejected.
func NewRegistry(classes ...*Class) (*Registry, error) {
	r := &Registry{
		classes: make(map[string]*Class, len(classes)),
	}

	log := logger.Logger()
	for _, class := range classes {
		if _, ok := r.classes[class.Name()]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrClassAlreadyDefined, class.Name())
		}

		r.order = append(r.order, class.Name())
		r.classes[class.Name()] = class
		log.Debugf("metadata: registered class %s (%d constructors, %d methods)",
			class.Name(), len(class.Constructors()), len(class.Methods()))
	}

	return r, nil
}

// Class returns the metadata of the named class.
func (r *Registry) Class(name string) (*Class, error) {
	class, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, name)
	}

	return class, nil
}

// Classes returns the registered class names in registration order.
func (r *Registry) Classes() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}
