package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "components", PkgAlias("example.com/game/components"))
	assert.Equal(t, "game", PkgAlias("game"))
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "Color", Qualify("", "Color"))
	assert.Equal(t, "components.Color", Qualify("components", "Color"))
}

func TestGroupBy(t *testing.T) {
	order, groups := GroupBy([]string{"b1", "a1", "b2", "c1"}, func(s string) byte { return s[0] })

	assert.Equal(t, []byte{'b', 'a', 'c'}, order)
	assert.Equal(t, []string{"b1", "b2"}, groups['b'])
	assert.Equal(t, []string{"a1"}, groups['a'])
	assert.True(t, IsMultiple(groups['b']))
	assert.False(t, IsMultiple(groups['c']))
	assert.True(t, IsEmpty(groups['z']))
}
