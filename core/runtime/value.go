// Package runtime defines the boundary between signature resolution and the
// managed runtime proper: the call-site argument values resolution sees only
// as static types, and the Invoker collaborator that performs the actual
// marshalling and invocation once an overload has been selected.
package runtime

import "github.com/anoideaopen/vmbind/core/descriptor"

// Value is one call-site argument. Resolution consumes nothing but its
// static type; payloads cross the boundary untouched and are marshalled by
// the Invoker. refs.Ref implements Value.
type Value interface {
	Tag() descriptor.TypeTag
}

// Primitive argument values.
type (
	Bool   bool
	Byte   int8
	Char   uint16
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
)

// Native string representations. StringOwned carries a copy the runtime may
// outlive the caller with; StringView borrows the caller's bytes for the
// duration of the call.
type (
	StringOwned string
	StringView  string
)

func (Bool) Tag() descriptor.TypeTag   { return descriptor.Primitive(descriptor.KindBool) }
func (Byte) Tag() descriptor.TypeTag   { return descriptor.Primitive(descriptor.KindByte) }
func (Char) Tag() descriptor.TypeTag   { return descriptor.Primitive(descriptor.KindChar) }
func (Short) Tag() descriptor.TypeTag  { return descriptor.Primitive(descriptor.KindShort) }
func (Int) Tag() descriptor.TypeTag    { return descriptor.Primitive(descriptor.KindInt) }
func (Long) Tag() descriptor.TypeTag   { return descriptor.Primitive(descriptor.KindLong) }
func (Float) Tag() descriptor.TypeTag  { return descriptor.Primitive(descriptor.KindFloat) }
func (Double) Tag() descriptor.TypeTag { return descriptor.Primitive(descriptor.KindDouble) }

func (StringOwned) Tag() descriptor.TypeTag { return descriptor.StringOwned() }
func (StringView) Tag() descriptor.TypeTag  { return descriptor.StringView() }

// Tags extracts the static type of every value, in order.
func Tags(values ...Value) []descriptor.TypeTag {
	tags := make([]descriptor.TypeTag, len(values))
	for i, v := range values {
		tags[i] = v.Tag()
	}

	return tags
}
