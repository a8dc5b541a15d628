package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by signature parsing.
var (
	// ErrInvalidSignature is returned when a type string cannot be parsed.
	ErrInvalidSignature = errors.New("invalid type signature")
)

const stringClass = "java/lang/String"

// StringClass is the class name both native string representations proxy.
func StringClass() string { return stringClass }

var kindSignatures = map[Kind]string{
	KindVoid:   "V",
	KindBool:   "Z",
	KindByte:   "B",
	KindChar:   "C",
	KindShort:  "S",
	KindInt:    "I",
	KindLong:   "J",
	KindFloat:  "F",
	KindDouble: "D",
}

// Signature renders the tag as a runtime type descriptor: single letters for
// primitives, a '[' prefix per array rank, and 'L<name>;' for object
// references. Native string representations render as the string class they
// proxy, since the runtime itself never sees them.
func (t TypeTag) Signature() string {
	var b strings.Builder
	for i := 0; i < t.Rank; i++ {
		b.WriteByte('[')
	}

	switch {
	case t.Kind == KindObject:
		b.WriteByte('L')
		b.WriteString(t.Class)
		b.WriteByte(';')
	case t.Kind.IsString():
		b.WriteByte('L')
		b.WriteString(stringClass)
		b.WriteByte(';')
	default:
		b.WriteString(kindSignatures[t.Kind])
	}

	return b.String()
}

// Signature renders the overload as '(<params>)<return>' using declared
// parameter types.
func (o Overload) Signature() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range o.Params {
		b.WriteString(p.Decl.Signature())
	}
	b.WriteByte(')')
	b.WriteString(o.Ret.Decl.Signature())

	return b.String()
}

// Authoring-level aliases accepted by ParseTypeTag in addition to signature
// syntax. The two string aliases let metadata documents pick an exact native
// representation, which signature syntax cannot express.
var tagAliases = map[string]TypeTag{
	"void":        Primitive(KindVoid),
	"boolean":     Primitive(KindBool),
	"byte":        Primitive(KindByte),
	"char":        Primitive(KindChar),
	"short":       Primitive(KindShort),
	"int":         Primitive(KindInt),
	"long":        Primitive(KindLong),
	"float":       Primitive(KindFloat),
	"double":      Primitive(KindDouble),
	"string":      StringOwned(),
	"string_view": StringView(),
}

// ParseTypeTag parses a type string into a TypeTag. It accepts runtime
// signature syntax ('I', '[[D', 'Lcom/example/Foo;') as well as the named
// aliases listed in tagAliases ('int', 'string_view', ...). Aliases may be
// rank-prefixed with '[' like any other element type.
//
// Returns ErrInvalidSignature (wrapped with the offending input) when the
// string is not a well-formed type.
func ParseTypeTag(s string) (TypeTag, error) {
	rank := 0
	rest := s
	for strings.HasPrefix(rest, "[") {
		rank++
		rest = rest[1:]
	}

	elem, err := parseScalar(rest)
	if err != nil {
		return TypeTag{}, fmt.Errorf("%w: %q", ErrInvalidSignature, s)
	}
	if rank > 0 {
		if elem.Kind == KindVoid {
			return TypeTag{}, fmt.Errorf("%w: %q: array of void", ErrInvalidSignature, s)
		}
		elem = ArrayOf(rank, elem)
	}

	return elem, nil
}

func parseScalar(s string) (TypeTag, error) {
	if tag, ok := tagAliases[s]; ok {
		return tag, nil
	}

	if strings.HasPrefix(s, "L") && strings.HasSuffix(s, ";") && len(s) > 2 {
		return Object(s[1 : len(s)-1]), nil
	}

	if len(s) == 1 {
		for kind, sig := range kindSignatures {
			if sig == s {
				return Primitive(kind), nil
			}
		}
	}

	return TypeTag{}, ErrInvalidSignature
}
