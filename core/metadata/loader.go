package metadata

import "github.com/anoideaopen/vmbind/core/stringsx"

// Loader answers whether a class may be supplied at all. Loaders gate
// routing, not resolution: resolution compares class names only, while a
// loader decides whether the class belongs to the caller's visible set.
type Loader interface {
	// Supports reports whether the loader can supply the named class,
	// directly or through an ancestor.
	Supports(className string) bool
}

// DefaultLoader supplies any class. Setting it as the root loader disables
// membership checks entirely.
var DefaultLoader Loader = defaultLoader{}

// NullLoader supplies no classes. It is the usual root for explicit loader
// sets.
var NullLoader Loader = nullLoader{}

type defaultLoader struct{}

func (defaultLoader) Supports(string) bool { return true }

type nullLoader struct{}

func (nullLoader) Supports(string) bool { return false }

type setLoader struct {
	parent  Loader
	classes []string
}

// NewSetLoader returns a loader that supplies exactly the listed classes
// plus whatever its parent supplies. A nil parent behaves as NullLoader.
func NewSetLoader(parent Loader, classes ...string) Loader {
	if parent == nil {
		parent = NullLoader
	}

	return setLoader{parent: parent, classes: classes}
}

func (l setLoader) Supports(className string) bool {
	if stringsx.OneOf(className, l.classes...) {
		return true
	}

	return l.parent.Supports(className)
}
