package descriptor

// ProxyTable yields, for a declared type, the ordered set of concrete
// representations accepted at parameter positions and the ordered set a
// return value may be materialized as. The two sets may differ for the same
// declared type.
type ProxyTable interface {
	// ParamProxies returns the representations accepted for decl at a
	// parameter position. The result is ordered and non-empty.
	ParamProxies(decl TypeTag) []TypeTag

	// ReturnProxies returns the representations decl may be materialized as
	// at a return position. The result is ordered and non-empty.
	ReturnProxies(decl TypeTag) []TypeTag
}

// DefaultProxyTable is the stock proxy table. Primitives and arrays proxy
// only themselves. A parameter declared as the string class accepts the
// owned native string, the borrowed view, and a reference, in that order; a
// string return is materialized as a reference or an owned native string.
// Any other object parameter accepts a reference to its own class.
type DefaultProxyTable struct{}

// ParamProxies implements ProxyTable.
func (DefaultProxyTable) ParamProxies(decl TypeTag) []TypeTag {
	if decl.IsObjectRef() && decl.Class == stringClass {
		return []TypeTag{StringOwned(), StringView(), Object(stringClass)}
	}

	return []TypeTag{decl.Strip()}
}

// ReturnProxies implements ProxyTable.
func (DefaultProxyTable) ReturnProxies(decl TypeTag) []TypeTag {
	if decl.IsObjectRef() && decl.Class == stringClass {
		return []TypeTag{Object(stringClass), StringOwned()}
	}

	return []TypeTag{decl.Strip()}
}
