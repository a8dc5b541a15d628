package metadata

import (
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
	"gopkg.in/yaml.v3"
)

// LoadYAML builds a registry from a YAML metadata document. Declared types
// are expanded into proxy sets through the given table; a nil table uses
// descriptor.DefaultProxyTable.
//
// Document shape:
//
//	classes:
//	  - name: com/example/Foo
//	    constructors:
//	      - params: ["I"]
//	    methods:
//	      - name: bar
//	        overloads:
//	          - params: ["Ljava/lang/String;"]
//	            returns: "V"
func LoadYAML(data []byte, table descriptor.ProxyTable) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.build(table)
}
