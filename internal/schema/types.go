package schema

import (
	"component-store/internal/common"
	"component-store/internal/token"
)

// HeaderKeyword is the identifier every schema must start with.
const HeaderKeyword = "components"

// DefaultPluralSuffix is appended to a component name that declares no plural.
// Pluralization is deliberately naive: "Entry" becomes "Entrys".
const DefaultPluralSuffix = "s"

// ComponentSpec is the parsed description of one component kind.
type ComponentSpec struct {
	// Name is the component type name exactly as written.
	Name string `yaml:"name"`
	// Plural is the declared plural, or Name + "s".
	Plural string `yaml:"plural"`
	// Indices lists the secondary index names in declaration order.
	// They are retained but not synthesized into lookup structures.
	Indices []string `yaml:"indices,omitempty"`
	// Pos is where the component name appeared.
	Pos token.Pos `yaml:"-"`
}

// NewComponentSpec builds a spec applying the plural and index defaults.
// An empty plural selects the default.
func NewComponentSpec(name, plural string, indices []string) ComponentSpec {
	if plural == "" {
		plural = DefaultPlural(name)
	}

	if indices == nil {
		indices = []string{}
	}

	return ComponentSpec{Name: name, Plural: plural, Indices: indices}
}

// DefaultPlural returns the plural used when a component declares none.
func DefaultPlural(name string) string {
	return name + DefaultPluralSuffix
}

// HasIndices reports whether the component declares secondary indices.
func (c ComponentSpec) HasIndices() bool {
	return !common.IsEmpty(c.Indices)
}
