package plan

//go:generate go tool stringer -type=Operation -linecomment -output=operation_string.go

// Operation is one method of the index-store contract.
type Operation int

const (
	OpNew       Operation = iota // new
	OpFind                       // find
	OpFindAll                    // find_all
	OpUpdate                     // update
	OpRemove                     // remove
	OpRemoveAll                  // remove_all
)

// StoreOperations lists every operation an index store exposes, constructor first.
var StoreOperations = []Operation{OpNew, OpFind, OpFindAll, OpUpdate, OpRemove, OpRemoveAll}

// AccessorOperations lists the operations the aggregate forwards per component.
var AccessorOperations = []Operation{OpFind, OpFindAll, OpUpdate, OpRemove, OpRemoveAll}

// IsBulk reports whether the operation acts on every entry and is therefore
// named after the component plural.
func (o Operation) IsBulk() bool {
	return o == OpFindAll || o == OpRemoveAll
}

// TakesKey reports whether the operation addresses a single key.
func (o Operation) TakesKey() bool {
	return o == OpFind || o == OpUpdate || o == OpRemove
}
