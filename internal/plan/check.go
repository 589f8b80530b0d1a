package plan

import (
	"fmt"
	gotoken "go/token"
	"go/types"
	"strings"

	"component-store/internal/common"
	"component-store/internal/diagnostic"
	"component-store/internal/schema"
	"component-store/internal/token"
)

// derived is one name a component contributes to the generated module.
type derived struct {
	name string
	spec schema.ComponentSpec
}

// Check reports names that collide across components, component names Go
// reserves, and secondary indices that are declared but not built. It never alters synthesis: a plan built
// from the same specs is identical whatever Check reports.
func Check(specs []schema.ComponentSpec) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	var fields, types, accessors []derived

	for _, spec := range specs {
		names := DeriveNames(spec)

		fields = append(fields, derived{name: names.Field, spec: spec})
		types = append(types, derived{name: names.IndexType, spec: spec})

		for _, op := range AccessorOperations {
			accessors = append(accessors, derived{name: names.Operation(op), spec: spec})
		}

		reportReserved(&d, spec)

		if spec.HasIndices() {
			d.AddInfo(diagnostic.CodeUnusedIndices,
				fmt.Sprintf("secondary indices %s are retained but no lookup structure is generated for them",
					strings.Join(spec.Indices, ", ")),
				spec.Name, spec.Pos)
		}
	}

	reportCollisions(&d, diagnostic.CodeDuplicateField, "aggregate field", fields, pluralSuggestion)
	reportCollisions(&d, diagnostic.CodeDuplicateType, "index type", types, nil)
	reportCollisions(&d, diagnostic.CodeDuplicateAccessor, "accessor", accessors, nil)

	return d
}

// reportCollisions warns once for each later entry reusing a name.
func reportCollisions(
	d *diagnostic.Diagnostics,
	code, what string,
	entries []derived,
	suggest func(schema.ComponentSpec) []string,
) {
	order, groups := common.GroupBy(entries, func(e derived) string { return e.name })

	for _, name := range order {
		group := groups[name]
		if !common.IsMultiple(group) {
			continue
		}

		first := group[0].spec
		for _, e := range group[1:] {
			diag := diagnostic.Diagnostic{
				Severity:  diagnostic.DiagnosticWarning,
				Code:      code,
				Message:   fmt.Sprintf("%s %q is also derived by %s%s", what, name, first.Name, declaredAt(first.Pos)),
				Component: e.spec.Name,
				Pos:       e.spec.Pos,
			}

			if suggest != nil {
				diag.Suggestions = suggest(e.spec)
			}

			d.Add(diag)
		}
	}
}

// reportReserved rejects keywords as component names and warns about names
// that shadow a predeclared identifier.
func reportReserved(d *diagnostic.Diagnostics, spec schema.ComponentSpec) {
	switch {
	case gotoken.IsKeyword(spec.Name):
		d.AddError(diagnostic.CodeReservedName,
			fmt.Sprintf("%q is a Go keyword and cannot name a component type", spec.Name),
			spec.Name, spec.Pos)
	case types.Universe.Lookup(spec.Name) != nil:
		d.AddWarning(diagnostic.CodePredeclaredName,
			fmt.Sprintf("%q shadows the predeclared Go identifier of the same name", spec.Name),
			spec.Name, spec.Pos)
	}
}

func pluralSuggestion(spec schema.ComponentSpec) []string {
	return []string{fmt.Sprintf("declare an explicit plural: %s/<Plural>", spec.Name)}
}

func declaredAt(pos token.Pos) string {
	if !pos.IsValid() {
		return ""
	}

	return " at " + pos.String()
}
