package descriptor

import "fmt"

// Shape is the ownership wrapper an object reference arrives in. The shape
// carries lifetime semantics only and never participates in matching: a
// locally scoped and a globally scoped reference to the same class are
// interchangeable at any parameter position.
type Shape int

// Supported ownership shapes.
const (
	ShapeNone   Shape = iota // values and unwrapped tags
	ShapeLocal               // reference scoped to the current native frame
	ShapeGlobal              // reference promoted to process lifetime
)

// String returns the human-readable name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeLocal:
		return "local"
	case ShapeGlobal:
		return "global"
	default:
		return "none"
	}
}

// TypeTag is the canonical static description of a type as seen by the
// resolution engine: a primitive kind, a native string representation, an
// array of a given rank, or a reference to a runtime class identified by its
// fully qualified name.
//
// TypeTag is a comparable value type. Declared parameter types, proxy-set
// members, and call-site argument types all live in the same tag space.
type TypeTag struct {
	Kind  Kind   // what the tag denotes
	Rank  int    // array rank, 0 for scalars
	Class string // fully qualified class name when Kind is KindObject
	Shape Shape  // ownership wrapper, ignored by matching
}

// Primitive returns the tag of a scalar primitive kind.
func Primitive(k Kind) TypeTag {
	return TypeTag{Kind: k}
}

// Object returns the tag of an unwrapped reference to the named class.
func Object(class string) TypeTag {
	return TypeTag{Kind: KindObject, Class: class}
}

// Local returns the tag of a locally scoped reference to the named class.
func Local(class string) TypeTag {
	return TypeTag{Kind: KindObject, Class: class, Shape: ShapeLocal}
}

// Global returns the tag of a globally scoped reference to the named class.
func Global(class string) TypeTag {
	return TypeTag{Kind: KindObject, Class: class, Shape: ShapeGlobal}
}

// StringOwned returns the tag of the natively owned string representation.
func StringOwned() TypeTag {
	return TypeTag{Kind: KindStringOwned}
}

// StringView returns the tag of the borrowed string view representation.
func StringView() TypeTag {
	return TypeTag{Kind: KindStringView}
}

// ArrayOf returns the tag of a rank-deep array of the given scalar element
// tag. It panics if rank is not positive or the element is itself an array;
// nested arrays are expressed through rank alone.
func ArrayOf(rank int, elem TypeTag) TypeTag {
	if rank <= 0 {
		panic(fmt.Sprintf("descriptor: invalid array rank %d", rank))
	}
	if elem.Rank != 0 {
		panic("descriptor: array element must be scalar, raise the rank instead")
	}

	elem.Rank = rank

	return elem
}

// IsObjectRef reports whether the tag is a scalar reference to a runtime
// object. Arrays of objects are matched as arrays, not as references.
func (t TypeTag) IsObjectRef() bool {
	return t.Kind == KindObject && t.Rank == 0
}

// Strip returns the tag with its ownership shape removed. Matching always
// compares stripped tags.
func (t TypeTag) Strip() TypeTag {
	t.Shape = ShapeNone
	return t
}

// Equal reports strict equality of two tags, shape included.
func (t TypeTag) Equal(other TypeTag) bool {
	return t == other
}

// String renders the tag in signature syntax, prefixed with the ownership
// shape when one is present.
func (t TypeTag) String() string {
	if t.Shape == ShapeNone {
		return t.Signature()
	}

	return t.Shape.String() + " " + t.Signature()
}
