package plan

import "component-store/internal/schema"

const (
	// DefaultAggregateName is the aggregate store type name.
	DefaultAggregateName = "ECS"
	// KeyType is the key type of every primary index.
	KeyType = "string"
)

// Options controls the names of the aggregate declarations.
type Options struct {
	// AggregateName is the aggregate store type name.
	AggregateName string
	// ConstructorName is the aggregate constructor name. Empty means "New" + AggregateName.
	ConstructorName string
}

// DefaultOptions returns the default synthesis options.
func DefaultOptions() Options {
	return Options{AggregateName: DefaultAggregateName}
}

func (o Options) withDefaults() Options {
	if o.AggregateName == "" {
		o.AggregateName = DefaultAggregateName
	}

	if o.ConstructorName == "" {
		o.ConstructorName = constructorPrefix + o.AggregateName
	}

	return o
}

// SynthesisPlan is the final output of the synthesis pipeline.
// It contains everything an emitter needs and is never mutated after Build.
type SynthesisPlan struct {
	// Components are the parsed specs in schema order.
	Components []schema.ComponentSpec
	// Indices are the per-component index-store types, in schema order.
	Indices []IndexTypeDecl
	// Aggregate is the container type holding one index store per component.
	Aggregate AggregateDecl
	// Constructor builds an aggregate with every index store initialized.
	Constructor ConstructorDecl
}

// IndexTypeDecl declares the keyed store of one component kind.
type IndexTypeDecl struct {
	// Name is the index-store type name (e.g. "ColorIndex").
	Name string
	// Component is the stored value type name (e.g. "Color").
	Component string
	// Constructor is the function returning an empty store (e.g. "NewColorIndex").
	Constructor string
	// KeyType is the primary key type.
	KeyType string
	// Operations lists the store contract, constructor first.
	Operations []Operation
	// SecondaryIndices are declared in the schema but not synthesized.
	SecondaryIndices []string
}

// FieldDecl is one field of the aggregate type.
type FieldDecl struct {
	// Name is the snake_case field name (e.g. "positions").
	Name string
	// Type is the index-store type name.
	Type string
}

// FieldInit initializes one aggregate field by calling an index constructor.
type FieldInit struct {
	Field       string
	Constructor string
}

// Accessor is an aggregate-level operation forwarding to one field's store.
type Accessor struct {
	// Name is the derived snake_case operation name (e.g. "find_all_positions").
	Name string
	// Field is the aggregate field the accessor forwards to.
	Field string
	// Op is the store operation invoked.
	Op Operation
	// Component is the stored value type name.
	Component string
}

// AggregateDecl is the aggregate store type.
type AggregateDecl struct {
	Name string
	// Fields are declared in schema order.
	Fields []FieldDecl
	// Accessors are grouped per component in schema order, then by operation.
	Accessors []Accessor
}

// ConstructorDecl is the aggregate constructor.
type ConstructorDecl struct {
	Name string
	// Returns is the aggregate type name.
	Returns string
	// Inits are the field initializers in schema order.
	Inits []FieldInit
}

// SynthesisFragment is everything synthesized for one component.
type SynthesisFragment struct {
	// Position is the component's index in schema order.
	Position  int
	Component schema.ComponentSpec
	Names     DerivedNames
	Index     IndexTypeDecl
	Field     FieldDecl
	Init      FieldInit
	Accessors []Accessor
}
