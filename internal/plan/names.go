package plan

import (
	"component-store/internal/ident"
	"component-store/internal/schema"
)

const (
	indexTypeSuffix   = "Index"
	constructorPrefix = "New"
)

// DerivedNames are the identifiers computed from one ComponentSpec.
type DerivedNames struct {
	// IndexType is Name + "Index".
	IndexType string
	// IndexConstructor is "New" + IndexType.
	IndexConstructor string
	// Field is the snake_case aggregate field name, derived from the plural.
	Field string
	// Find, FindAll, Update, Remove and RemoveAll are the snake_case
	// operation names the aggregate exposes for this component.
	Find      string
	FindAll   string
	Update    string
	Remove    string
	RemoveAll string
}

// DeriveNames computes every identifier of a component.
func DeriveNames(spec schema.ComponentSpec) DerivedNames {
	return DerivedNames{
		IndexType:        IndexTypeName(spec.Name),
		IndexConstructor: IndexConstructorName(spec.Name),
		Field:            FieldName(spec.Plural),
		Find:             OperationName(OpFind, spec),
		FindAll:          OperationName(OpFindAll, spec),
		Update:           OperationName(OpUpdate, spec),
		Remove:           OperationName(OpRemove, spec),
		RemoveAll:        OperationName(OpRemoveAll, spec),
	}
}

// Operation returns the derived name for op, or "" for OpNew.
func (n DerivedNames) Operation(op Operation) string {
	switch op {
	case OpFind:
		return n.Find
	case OpFindAll:
		return n.FindAll
	case OpUpdate:
		return n.Update
	case OpRemove:
		return n.Remove
	case OpRemoveAll:
		return n.RemoveAll
	default:
		return ""
	}
}

// IndexTypeName returns the index-store type name of a component.
func IndexTypeName(name string) string {
	return name + indexTypeSuffix
}

// IndexConstructorName returns the constructor name of a component's index store.
func IndexConstructorName(name string) string {
	return constructorPrefix + IndexTypeName(name)
}

// FieldName returns the aggregate field name for a component plural.
func FieldName(plural string) string {
	return ident.SnakeCase(plural)
}

// OperationName derives the aggregate-level name of op for a component.
// Bulk operations use the plural, keyed ones the singular name.
// OpNew has no aggregate-level name and yields "".
func OperationName(op Operation, spec schema.ComponentSpec) string {
	if op == OpNew {
		return ""
	}

	subject := spec.Name
	if op.IsBulk() {
		subject = spec.Plural
	}

	return ident.SnakeCase(op.String() + "_" + subject)
}
