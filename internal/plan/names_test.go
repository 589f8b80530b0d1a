package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"component-store/internal/schema"
)

func TestDeriveNames(t *testing.T) {
	tests := []struct {
		name     string
		spec     schema.ComponentSpec
		expected DerivedNames
	}{
		{
			name: "default plural",
			spec: schema.NewComponentSpec("Color", "", nil),
			expected: DerivedNames{
				IndexType:        "ColorIndex",
				IndexConstructor: "NewColorIndex",
				Field:            "colors",
				Find:             "find_color",
				FindAll:          "find_all_colors",
				Update:           "update_color",
				Remove:           "remove_color",
				RemoveAll:        "remove_all_colors",
			},
		},
		{
			name: "explicit plural",
			spec: schema.NewComponentSpec("Mouse", "Mice", nil),
			expected: DerivedNames{
				IndexType:        "MouseIndex",
				IndexConstructor: "NewMouseIndex",
				Field:            "mice",
				Find:             "find_mouse",
				FindAll:          "find_all_mice",
				Update:           "update_mouse",
				Remove:           "remove_mouse",
				RemoveAll:        "remove_all_mice",
			},
		},
		{
			name: "multi word",
			spec: schema.NewComponentSpec("RigidBody", "RigidBodies", nil),
			expected: DerivedNames{
				IndexType:        "RigidBodyIndex",
				IndexConstructor: "NewRigidBodyIndex",
				Field:            "rigid_bodies",
				Find:             "find_rigid_body",
				FindAll:          "find_all_rigid_bodies",
				Update:           "update_rigid_body",
				Remove:           "remove_rigid_body",
				RemoveAll:        "remove_all_rigid_bodies",
			},
		},
		{
			name: "naive plural kept",
			spec: schema.NewComponentSpec("Entry", "", nil),
			expected: DerivedNames{
				IndexType:        "EntryIndex",
				IndexConstructor: "NewEntryIndex",
				Field:            "entrys",
				Find:             "find_entry",
				FindAll:          "find_all_entrys",
				Update:           "update_entry",
				Remove:           "remove_entry",
				RemoveAll:        "remove_all_entrys",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveNames(tt.spec))
		})
	}
}

func TestDerivedNames_Operation(t *testing.T) {
	names := DeriveNames(schema.NewComponentSpec("Position", "Positions", nil))

	assert.Equal(t, "", names.Operation(OpNew))
	assert.Equal(t, "find_position", names.Operation(OpFind))
	assert.Equal(t, "find_all_positions", names.Operation(OpFindAll))
	assert.Equal(t, "update_position", names.Operation(OpUpdate))
	assert.Equal(t, "remove_position", names.Operation(OpRemove))
	assert.Equal(t, "remove_all_positions", names.Operation(OpRemoveAll))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "find_all", OpFindAll.String())
	assert.Equal(t, "new", OpNew.String())
	assert.Equal(t, "Operation(17)", Operation(17).String())

	assert.True(t, OpFindAll.IsBulk())
	assert.True(t, OpRemoveAll.IsBulk())
	assert.False(t, OpFind.IsBulk())

	assert.True(t, OpUpdate.TakesKey())
	assert.False(t, OpRemoveAll.TakesKey())
	assert.False(t, OpNew.TakesKey())
}
