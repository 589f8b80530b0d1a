package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
schema: game.ecs
output: ./internal/store
package: store
aggregate: World
constructor: MakeWorld
component_import: example.com/game/components
concurrent: true
comments: false
log_mode: production
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "game.ecs", c.Schema)
	assert.Equal(t, "./internal/store", c.Output)
	assert.Equal(t, "store", c.Package)
	assert.Equal(t, "World", c.Aggregate)
	assert.True(t, c.Concurrent)
	assert.Equal(t, "production", c.LogMode)

	opts := c.PlanOptions()
	assert.Equal(t, "World", opts.AggregateName)
	assert.Equal(t, "MakeWorld", opts.ConstructorName)

	gc := c.GeneratorConfig()
	assert.Equal(t, "store", gc.PackageName)
	assert.Equal(t, "./internal/store", gc.OutputDir)
	assert.Equal(t, "component_store_gen.go", gc.Filename) // Default
	assert.Equal(t, "component-store/index", gc.RuntimeImport)
	assert.Equal(t, "example.com/game/components", gc.ComponentImport)
	assert.True(t, gc.Concurrent)
	assert.False(t, gc.GenerateComments)
	assert.True(t, gc.GenerateAccessors) // Default
	assert.Equal(t, "game.ecs", gc.Source)
}

func TestParseMinimal(t *testing.T) {
	c, err := Parse([]byte("schema: schema.ecs\n"))
	require.NoError(t, err)

	assert.Equal(t, "./generated", c.Output)
	assert.Equal(t, "components", c.Package)
	assert.Equal(t, "ECS", c.Aggregate)
	assert.Equal(t, "development", c.LogMode)
	require.NotNil(t, c.Comments)
	assert.True(t, *c.Comments)
	assert.Empty(t, c.PlanOptions().ConstructorName)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("schema: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "component-store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: game\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "game", c.Package)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = LoadOptional("explicit.yaml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("aggregate: Registry\n"), 0o644))

	c, err = LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, "Registry", c.Aggregate)
}

func TestMarshalRoundTripKeepsDefaults(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
