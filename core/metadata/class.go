package metadata

import "github.com/anoideaopen/vmbind/core/descriptor"

// Method is one named method of a class together with its declaration-ordered
// overload set.
type Method struct {
	Name      string
	Overloads []descriptor.Overload
}

// Class is the immutable metadata of one runtime class: its fully qualified
// name, its constructor overloads, and its methods. Declaration order of
// constructors, methods, and overloads is fixed at creation and semantically
// meaningful: resolution ties break on it.
type Class struct {
	name         string
	constructors []descriptor.Overload
	methodOrder  []string
	methods      map[string][]descriptor.Overload
}

// ClassOption configures a class under construction.
type ClassOption func(*Class)

// NewClass authors the metadata of the named class. The order in which
// options are applied is the declaration order.
func NewClass(name string, opts ...ClassOption) *Class {
	c := &Class{
		name:    name,
		methods: make(map[string][]descriptor.Overload),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithConstructor declares one constructor overload with the given
// parameters. Constructors return void.
func WithConstructor(params ...descriptor.ParameterDescriptor) ClassOption {
	return func(c *Class) {
		ov := descriptor.NewOverload(
			descriptor.Return(descriptor.Primitive(descriptor.KindVoid)),
			params...,
		)
		c.constructors = append(c.constructors, ov)
	}
}

// WithMethod declares overloads for the named method, appending to any
// overloads the method already has.
func WithMethod(name string, overloads ...descriptor.Overload) ClassOption {
	return func(c *Class) {
		if _, ok := c.methods[name]; !ok {
			c.methodOrder = append(c.methodOrder, name)
		}
		c.methods[name] = append(c.methods[name], overloads...)
	}
}

// Name returns the fully qualified class name.
func (c *Class) Name() string {
	return c.name
}

// Constructors returns the declaration-ordered constructor overloads. The
// returned slice must not be modified.
func (c *Class) Constructors() []descriptor.Overload {
	return c.constructors
}

// Method returns the declaration-ordered overload set of the named method
// and whether the method exists. The returned slice must not be modified.
func (c *Class) Method(name string) ([]descriptor.Overload, bool) {
	overloads, ok := c.methods[name]
	return overloads, ok
}

// Methods returns every method in declaration order.
func (c *Class) Methods() []Method {
	methods := make([]Method, 0, len(c.methodOrder))
	for _, name := range c.methodOrder {
		methods = append(methods, Method{Name: name, Overloads: c.methods[name]})
	}

	return methods
}
