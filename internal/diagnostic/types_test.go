package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-store/internal/token"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeUnusedIndices, "secondary indices are not built", "Position", token.Pos{Line: 3, Column: 3})
	d.AddWarning(CodeDuplicateField, "field positions already declared", "Positions", token.Pos{})

	assert.True(t, d.IsValid())
	assert.True(t, d.HasWarnings())
	assert.False(t, d.HasErrors())

	d.AddError("boom", "broken", "", token.Pos{})
	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, "[boom] broken", d.Error().Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning(CodeDuplicateType, "x", "A", token.Pos{})
	b.AddWarning(CodeDuplicateType, "y", "B", token.Pos{})
	b.AddInfo(CodeUnusedIndices, "z", "B", token.Pos{})

	a.Merge(b)

	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        CodeDuplicateField,
		Message:     "field colors is declared by Color and Colour",
		Component:   "Colour",
		Pos:         token.Pos{Line: 3, Column: 3},
		Suggestions: []string{"Colour/Colours"},
	}

	assert.Equal(t,
		"3:3 [Colour]: [duplicate-field] field colors is declared by Color and Colour (try: Colour/Colours)",
		d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
