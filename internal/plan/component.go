package plan

import (
	"slices"

	"component-store/internal/schema"
)

// BuildFragment synthesizes the declarations of one component.
// Secondary indices are carried on the index declaration but no lookup
// structure is built for them.
func BuildFragment(spec schema.ComponentSpec, position int) SynthesisFragment {
	names := DeriveNames(spec)

	index := IndexTypeDecl{
		Name:             names.IndexType,
		Component:        spec.Name,
		Constructor:      names.IndexConstructor,
		KeyType:          KeyType,
		Operations:       slices.Clone(StoreOperations),
		SecondaryIndices: slices.Clone(spec.Indices),
	}

	accessors := make([]Accessor, 0, len(AccessorOperations))
	for _, op := range AccessorOperations {
		accessors = append(accessors, Accessor{
			Name:      names.Operation(op),
			Field:     names.Field,
			Op:        op,
			Component: spec.Name,
		})
	}

	return SynthesisFragment{
		Position:  position,
		Component: spec,
		Names:     names,
		Index:     index,
		Field:     FieldDecl{Name: names.Field, Type: names.IndexType},
		Init:      FieldInit{Field: names.Field, Constructor: names.IndexConstructor},
		Accessors: accessors,
	}
}

// BuildFragments synthesizes every component in schema order.
func BuildFragments(specs []schema.ComponentSpec) []SynthesisFragment {
	fragments := make([]SynthesisFragment, 0, len(specs))
	for i, spec := range specs {
		fragments = append(fragments, BuildFragment(spec, i))
	}

	return fragments
}
