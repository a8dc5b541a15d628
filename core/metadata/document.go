package metadata

import (
	"errors"
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
)

// ErrInvalidDocument is returned when a metadata document is structurally
// malformed.
var ErrInvalidDocument = errors.New("invalid metadata document")

// document is the on-disk authoring format shared by the YAML and JSON
// loaders. Type strings use signature syntax or the named aliases accepted
// by descriptor.ParseTypeTag.
type document struct {
	Classes []classDoc `yaml:"classes" json:"classes"`
}

type classDoc struct {
	Name         string        `yaml:"name" json:"name"`
	Constructors []overloadDoc `yaml:"constructors" json:"constructors"`
	Methods      []methodDoc   `yaml:"methods" json:"methods"`
}

type methodDoc struct {
	Name      string        `yaml:"name" json:"name"`
	Overloads []overloadDoc `yaml:"overloads" json:"overloads"`
}

type overloadDoc struct {
	Params  []string `yaml:"params" json:"params"`
	Returns string   `yaml:"returns" json:"returns"`
}

// build materializes a registry from a parsed document, expanding each
// declared parameter and return type into its proxy set through the table.
func (doc document) build(table descriptor.ProxyTable) (*Registry, error) {
	if table == nil {
		table = descriptor.DefaultProxyTable{}
	}

	classes := make([]*Class, 0, len(doc.Classes))
	for _, cd := range doc.Classes {
		if cd.Name == "" {
			return nil, fmt.Errorf("%w: class without a name", ErrInvalidDocument)
		}

		opts := make([]ClassOption, 0, len(cd.Constructors)+len(cd.Methods))
		for _, od := range cd.Constructors {
			params, err := parseParams(od.Params, table)
			if err != nil {
				return nil, fmt.Errorf("class '%s' constructor: %w", cd.Name, err)
			}
			opts = append(opts, WithConstructor(params...))
		}

		for _, md := range cd.Methods {
			if md.Name == "" {
				return nil, fmt.Errorf("%w: class '%s' has a method without a name", ErrInvalidDocument, cd.Name)
			}

			overloads := make([]descriptor.Overload, 0, len(md.Overloads))
			for _, od := range md.Overloads {
				ov, err := parseOverload(od, table)
				if err != nil {
					return nil, fmt.Errorf("class '%s' method '%s': %w", cd.Name, md.Name, err)
				}
				overloads = append(overloads, ov)
			}
			opts = append(opts, WithMethod(md.Name, overloads...))
		}

		classes = append(classes, NewClass(cd.Name, opts...))
	}

	return NewRegistry(classes...)
}

func parseParams(types []string, table descriptor.ProxyTable) ([]descriptor.ParameterDescriptor, error) {
	params := make([]descriptor.ParameterDescriptor, 0, len(types))
	for _, ts := range types {
		decl, err := descriptor.ParseTypeTag(ts)
		if err != nil {
			return nil, err
		}
		params = append(params, descriptor.Param(decl, table.ParamProxies(decl)...))
	}

	return params, nil
}

func parseOverload(od overloadDoc, table descriptor.ProxyTable) (descriptor.Overload, error) {
	params, err := parseParams(od.Params, table)
	if err != nil {
		return descriptor.Overload{}, err
	}

	returns := od.Returns
	if returns == "" {
		returns = "V"
	}
	retDecl, err := descriptor.ParseTypeTag(returns)
	if err != nil {
		return descriptor.Overload{}, err
	}

	ret := descriptor.Return(retDecl, table.ReturnProxies(retDecl)...)

	return descriptor.NewOverload(ret, params...), nil
}
