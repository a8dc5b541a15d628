package descriptor

// ParameterDescriptor is one declared parameter position of an overload: the
// declared type plus the ordered, non-empty set of concrete representations
// accepted in that position. Proxy-set order is semantically meaningful and
// fixed at authoring time.
type ParameterDescriptor struct {
	Decl    TypeTag
	Proxies []TypeTag
}

// ReturnDescriptor is the declared return type of an overload plus the
// ordered set of representations it may be materialized as. The return
// proxy set is independent of any parameter proxy set for the same type.
type ReturnDescriptor struct {
	Decl    TypeTag
	Proxies []TypeTag
}

// Overload is one declared signature among possibly several sharing a method
// name: an ordered parameter list and a return descriptor. Overloads are
// authored once and never mutated afterwards.
type Overload struct {
	Params []ParameterDescriptor
	Ret    ReturnDescriptor
}

// Param builds a ParameterDescriptor. When no proxies are given the declared
// type is its own sole representation.
func Param(decl TypeTag, proxies ...TypeTag) ParameterDescriptor {
	if len(proxies) == 0 {
		proxies = []TypeTag{decl}
	}

	return ParameterDescriptor{Decl: decl, Proxies: proxies}
}

// Return builds a ReturnDescriptor. When no proxies are given the declared
// type is its own sole representation.
func Return(decl TypeTag, proxies ...TypeTag) ReturnDescriptor {
	if len(proxies) == 0 {
		proxies = []TypeTag{decl}
	}

	return ReturnDescriptor{Decl: decl, Proxies: proxies}
}

// NewOverload builds an overload from a return descriptor and an ordered
// parameter list.
func NewOverload(ret ReturnDescriptor, params ...ParameterDescriptor) Overload {
	return Overload{Params: params, Ret: ret}
}

// Arity returns the number of declared parameters.
func (o Overload) Arity() int {
	return len(o.Params)
}
