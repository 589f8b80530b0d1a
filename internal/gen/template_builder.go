package gen

import (
	"fmt"
	"sort"
	"strings"

	"component-store/internal/common"
	"component-store/internal/ident"
	"component-store/internal/plan"
)

const (
	receiverName = "s"
	keyParam     = "key"
	valueParam   = "value"

	// runtimeAlias is the import name of the runtime index package. It is
	// fixed so component names such as "index" cannot shadow the import.
	runtimeAlias = "csindex"
)

// templateData holds all data needed for the store template.
type templateData struct {
	PackageName      string
	Filename         string
	Source           string
	Imports          []importSpec
	GenerateComments bool
	Indices          []indexData
	Aggregate        string
	Constructor      string
	Receiver         string
	Fields           []fieldData
	Inits            []initData
	Accessors        []accessorData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

type indexData struct {
	TypeName         string
	ValueType        string
	Constructor      string
	Embedded         string
	SecondaryIndices string
}

type fieldData struct {
	Name string
	Type string
}

type initData struct {
	Field       string
	Constructor string
}

type accessorData struct {
	Name    string
	Doc     string
	Params  string
	Results string
	Field   string
	Method  string
	Args    string
}

// buildTemplateData constructs the template data from a synthesis plan.
func (g *Generator) buildTemplateData(p *plan.SynthesisPlan) *templateData {
	componentAlias := common.PkgAlias(g.config.ComponentImport)

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.config.Filename,
		Source:           g.config.Source,
		Imports:          g.imports(),
		GenerateComments: g.config.GenerateComments,
		Aggregate:        p.Aggregate.Name,
		Constructor:      p.Constructor.Name,
		Receiver:         receiverName,
	}

	embedded := "Index"
	if g.config.Concurrent {
		embedded = "Guarded"
	}

	for _, idx := range p.Indices {
		valueType := common.Qualify(componentAlias, idx.Component)

		data.Indices = append(data.Indices, indexData{
			TypeName:         idx.Name,
			ValueType:        valueType,
			Constructor:      idx.Constructor,
			Embedded:         fmt.Sprintf("%s.%s[%s]", runtimeAlias, embedded, valueType),
			SecondaryIndices: strings.Join(idx.SecondaryIndices, ", "),
		})
	}

	for _, f := range p.Aggregate.Fields {
		data.Fields = append(data.Fields, fieldData{Name: goFieldName(f.Name), Type: f.Type})
	}

	for _, in := range p.Constructor.Inits {
		data.Inits = append(data.Inits, initData{Field: goFieldName(in.Field), Constructor: in.Constructor})
	}

	if g.config.GenerateAccessors {
		for _, a := range p.Aggregate.Accessors {
			data.Accessors = append(data.Accessors, buildAccessor(a, common.Qualify(componentAlias, a.Component)))
		}
	}

	return data
}

// imports returns the sorted import list of the generated file.
func (g *Generator) imports() []importSpec {
	specs := []importSpec{{Alias: runtimeAlias, Path: g.config.RuntimeImport}}
	if g.config.ComponentImport != "" {
		specs = append(specs, importSpec{Path: g.config.ComponentImport})
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// goFieldName exports a snake_case plan field name.
func goFieldName(snake string) string {
	return ident.TypeCase(snake)
}

// buildAccessor renders the signature and forwarding call of one accessor.
func buildAccessor(a plan.Accessor, valueType string) accessorData {
	data := accessorData{
		Name:   ident.TypeCase(a.Name),
		Field:  goFieldName(a.Field),
		Method: ident.TypeCase(a.Op.String()),
	}

	if a.Op.TakesKey() {
		data.Params = keyParam + " " + plan.KeyType
		data.Args = keyParam
	}

	switch a.Op {
	case plan.OpFind:
		data.Doc = fmt.Sprintf("returns the %s stored under key.", valueType)
		data.Results = fmt.Sprintf("(%s, bool)", valueType)
	case plan.OpFindAll:
		data.Doc = fmt.Sprintf("returns every stored %s in unspecified order.", valueType)
		data.Results = "[]" + valueType
	case plan.OpUpdate:
		data.Doc = fmt.Sprintf("stores value under key and returns the %s it replaced, if any.", valueType)
		data.Params += fmt.Sprintf(", %s %s", valueParam, valueType)
		data.Results = fmt.Sprintf("(%s, bool)", valueType)
		data.Args += ", " + valueParam
	case plan.OpRemove:
		data.Doc = fmt.Sprintf("deletes the %s stored under key, if any.", valueType)
	case plan.OpRemoveAll:
		data.Doc = fmt.Sprintf("deletes every stored %s.", valueType)
	}

	return data
}
