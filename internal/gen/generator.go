package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"component-store/internal/plan"
)

// DefaultRuntimeImport is the import path of the runtime index package.
const DefaultRuntimeImport = "component-store/index"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// RuntimeImport is the import path of the runtime index package.
	RuntimeImport string
	// ComponentImport is the import path of the package declaring the
	// component types. Empty means the types live in the generated package.
	ComponentImport string
	// Concurrent embeds the mutex-guarded index instead of the plain one.
	Concurrent bool
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// GenerateAccessors enables the aggregate-level forwarding methods.
	GenerateAccessors bool
	// Source names the schema in the generated header (optional).
	Source string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:       "components",
		OutputDir:         "./generated",
		Filename:          "component_store_gen.go",
		RuntimeImport:     DefaultRuntimeImport,
		GenerateComments:  true,
		GenerateAccessors: true,
	}
}

// Generator generates Go code from a synthesis plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
// Empty fields fall back to DefaultGeneratorConfig values.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()

	if config.PackageName == "" {
		config.PackageName = def.PackageName
	}

	if config.Filename == "" {
		config.Filename = def.Filename
	}

	if config.RuntimeImport == "" {
		config.RuntimeImport = def.RuntimeImport
	}

	return &Generator{config: config}
}

// Config returns the effective configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "component_store_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the plan into Go source files.
func (g *Generator) Generate(p *plan.SynthesisPlan) ([]GeneratedFile, error) {
	if p == nil {
		return nil, fmt.Errorf("generating %s: nil plan", g.config.Filename)
	}

	if diags := g.Check(p); diags.HasErrors() {
		return nil, fmt.Errorf("generating %s: %w", g.config.Filename, diags.Error())
	}

	file, err := g.generateStore(p)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", g.config.Filename, err)
	}

	return []GeneratedFile{*file}, nil
}

// generateStore renders the single store file.
func (g *Generator) generateStore(p *plan.SynthesisPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := storeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := formatSource(data.Filename, buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// formatSource gofmts src and sorts its imports without adding or removing any.
func formatSource(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

var storeTemplate = template.Must(template.New("store").Parse(`// Code generated by component-store{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Indices}}
{{if $.GenerateComments}}// {{.TypeName}} is the primary string-keyed index of {{.ValueType}} components.
// The zero value is an empty index ready to use.
{{if .SecondaryIndices}}//
// Secondary indices declared in the schema but not generated: {{.SecondaryIndices}}.
{{end}}{{end}}type {{.TypeName}} struct {
	{{.Embedded}}
}

{{if $.GenerateComments}}// {{.Constructor}} returns an empty {{.TypeName}}.
{{end}}func {{.Constructor}}() {{.TypeName}} {
	return {{.TypeName}}{}
}
{{end}}
{{if .GenerateComments}}// {{.Aggregate}} holds one index per component kind.
{{end}}type {{.Aggregate}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

{{if .GenerateComments}}// {{.Constructor}} returns a new {{.Aggregate}} with every index initialized.
{{end}}func {{.Constructor}}() *{{.Aggregate}} {
	return &{{.Aggregate}}{
{{range .Inits}}		{{.Field}}: {{.Constructor}}(),
{{end}}	}
}
{{range .Accessors}}
{{if $.GenerateComments}}// {{.Name}} {{.Doc}}
{{end}}func ({{$.Receiver}} *{{$.Aggregate}}) {{.Name}}({{.Params}}){{if .Results}} {{.Results}}{{end}} {
	{{if .Results}}return {{end}}{{$.Receiver}}.{{.Field}}.{{.Method}}({{.Args}})
}
{{end}}`))
