package gen

import (
	"fmt"
	"slices"

	"component-store/internal/common"
	"component-store/internal/diagnostic"
	"component-store/internal/plan"
	"component-store/internal/token"
)

// referencedBuiltins are the predeclared identifiers the store file uses.
var referencedBuiltins = []string{plan.KeyType, "bool"}

// Check reports plan names the generated file cannot declare: names equal to
// one of its import aliases, and local component types that would shadow a
// predeclared identifier the file relies on.
func (g *Generator) Check(p *plan.SynthesisPlan) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if p == nil {
		return d
	}

	aliases := []string{runtimeAlias}
	if alias := common.PkgAlias(g.config.ComponentImport); alias != "" {
		aliases = append(aliases, alias)
	}

	// Without a component import the component types share the package scope.
	local := g.config.ComponentImport == ""

	for i, spec := range p.Components {
		var declared []string
		if i < len(p.Indices) {
			declared = append(declared, p.Indices[i].Name, p.Indices[i].Constructor)
		}

		if local {
			declared = append(declared, spec.Name)
		}

		for _, name := range declared {
			if slices.Contains(aliases, name) {
				d.AddError(diagnostic.CodeImportCollision,
					fmt.Sprintf("%q collides with an import of the generated file", name),
					spec.Name, spec.Pos)
			}
		}

		if local && slices.Contains(referencedBuiltins, spec.Name) {
			d.AddError(diagnostic.CodeShadowedBuiltin,
				fmt.Sprintf("component type %q shadows the predeclared identifier the generated file uses", spec.Name),
				spec.Name, spec.Pos)
		}
	}

	for _, name := range []string{p.Aggregate.Name, p.Constructor.Name} {
		if slices.Contains(aliases, name) {
			d.AddError(diagnostic.CodeImportCollision,
				fmt.Sprintf("%q collides with an import of the generated file", name),
				"", token.Pos{})
		}
	}

	return d
}
