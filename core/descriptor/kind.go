package descriptor

// Kind identifies the concrete kind a TypeTag denotes: one of the runtime's
// primitive kinds, one of the native string representations, or a reference
// to a runtime object.
type Kind int

// Supported kinds.
const (
	KindVoid Kind = iota
	KindBool
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindStringOwned // natively owned string buffer
	KindStringView  // borrowed string view
	KindObject      // reference to a runtime object
)

var kindNames = map[Kind]string{
	KindVoid:        "void",
	KindBool:        "boolean",
	KindByte:        "byte",
	KindChar:        "char",
	KindShort:       "short",
	KindInt:         "int",
	KindLong:        "long",
	KindFloat:       "float",
	KindDouble:      "double",
	KindStringOwned: "string",
	KindStringView:  "string_view",
	KindObject:      "object",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// IsPrimitive reports whether the kind is one of the runtime's primitive
// value kinds (boolean through double).
func (k Kind) IsPrimitive() bool {
	return k >= KindBool && k <= KindDouble
}

// IsString reports whether the kind is one of the native string
// representations.
func (k Kind) IsString() bool {
	return k == KindStringOwned || k == KindStringView
}
