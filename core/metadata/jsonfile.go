package metadata

import (
	"fmt"

	"github.com/anoideaopen/vmbind/core/descriptor"
	json "github.com/goccy/go-json"
)

// LoadJSON builds a registry from a JSON metadata document. The document
// shape mirrors LoadYAML.
func LoadJSON(data []byte, table descriptor.ProxyTable) (*Registry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.build(table)
}
