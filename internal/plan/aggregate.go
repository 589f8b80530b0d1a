package plan

import (
	"component-store/internal/schema"
	"component-store/internal/token"
)

// BuildPlan folds per-component fragments into a SynthesisPlan.
// Fragment order is preserved everywhere. Colliding names are not detected
// here; see Check.
func BuildPlan(fragments []SynthesisFragment, opts Options) *SynthesisPlan {
	opts = opts.withDefaults()

	p := &SynthesisPlan{
		Components: make([]schema.ComponentSpec, 0, len(fragments)),
		Indices:    make([]IndexTypeDecl, 0, len(fragments)),
		Aggregate: AggregateDecl{
			Name:   opts.AggregateName,
			Fields: make([]FieldDecl, 0, len(fragments)),
		},
		Constructor: ConstructorDecl{
			Name:    opts.ConstructorName,
			Returns: opts.AggregateName,
			Inits:   make([]FieldInit, 0, len(fragments)),
		},
	}

	for _, f := range fragments {
		p.Components = append(p.Components, f.Component)
		p.Indices = append(p.Indices, f.Index)
		p.Aggregate.Fields = append(p.Aggregate.Fields, f.Field)
		p.Aggregate.Accessors = append(p.Aggregate.Accessors, f.Accessors...)
		p.Constructor.Inits = append(p.Constructor.Inits, f.Init)
	}

	return p
}

// Build synthesizes a plan from already parsed components.
func Build(specs []schema.ComponentSpec, opts Options) *SynthesisPlan {
	return BuildPlan(BuildFragments(specs), opts)
}

// Synthesize parses a schema from the cursor and builds its plan.
// Any parse error aborts synthesis; the returned plan is then nil.
func Synthesize(c *token.Cursor, opts Options) (*SynthesisPlan, error) {
	specs, err := schema.Parse(c)
	if err != nil {
		return nil, err
	}

	return Build(specs, opts), nil
}
