package inputgen

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ktsosno/graphql-code-generator/codegen"
	"github.com/ktsosno/graphql-code-generator/config"
)

// ClassGenerator emits one immutable Java value class for one input
// object type: field declarations, constructor, accessors, the
// marshaller method, and the nested builder. The import set accumulates
// across those emissions and is read once at the end, so a generator
// instance serves exactly one class.
type ClassGenerator struct {
	resolver   *TypeResolver
	marshaller *MarshallerBuilder
	table      *WriterTable
	imports    *codegen.ImportSet
	pkg        string
	runtimePkg string
}

// NewClassGenerator creates a generator for a single class generation.
func NewClassGenerator(schema *ast.Schema, cfg *config.Config) *ClassGenerator {
	imports := codegen.NewImportSet()
	table := NewWriterTable()

	return &ClassGenerator{
		resolver:   NewTypeResolver(schema, cfg.Output.Package, cfg.ScalarMappings, imports),
		marshaller: NewMarshallerBuilder(table),
		table:      table,
		imports:    imports,
		pkg:        cfg.Output.Package,
		runtimePkg: cfg.Output.RuntimePackage,
	}
}

// Generate produces the complete class source for the input object
// definition, together with the accumulated import list.
func (g *ClassGenerator) Generate(def *ast.Definition) (*codegen.GeneratedClass, error) {
	if def.Kind != ast.InputObject {
		return nil, fmt.Errorf("type %q is %s, not an input object", def.Name, def.Kind)
	}

	className := codegen.JavaTypeName(def.Name)

	fields := make([]*FieldSpec, 0, len(def.Fields))
	for _, field := range def.Fields {
		spec, err := g.analyzeField(field)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", def.Name, field.Name, err)
		}
		fields = append(fields, spec)
	}

	members := make([]string, 0, 3*len(fields)+4)
	members = append(members, g.fieldDecls(fields)...)
	members = append(members, g.constructor(className, fields))
	members = append(members, g.accessors(fields)...)
	members = append(members, g.marshallerMethod(fields))
	members = append(members, g.builderFactory())
	members = append(members, g.builderClass(className, fields))

	// The runtime's InputType interface declares marshaller(); the
	// generated class advertises the capability rather than just
	// happening to have the method.
	g.imports.Add(g.runtimePkg + ".InputType")

	spec := &codegen.ClassSpec{
		Package:    g.pkg,
		Imports:    g.imports.Sorted(),
		Doc:        def.Description,
		Modifiers:  "public final",
		Keyword:    "class",
		Name:       className,
		Implements: []string{"InputType"},
		Body:       members,
	}

	return &codegen.GeneratedClass{
		Name:    className,
		Imports: g.imports.Sorted(),
		Source:  spec.Source(),
	}, nil
}

// marshallerMethod wraps the marshal statements in the anonymous
// InputFieldMarshaller the class hands to callers.
func (g *ClassGenerator) marshallerMethod(fields []*FieldSpec) string {
	g.imports.Add(g.runtimePkg + ".InputFieldMarshaller")
	g.imports.Add(g.runtimePkg + ".InputFieldWriter")
	g.imports.Add("java.io.IOException")

	statements := g.marshaller.BuildMarshalMethod(fields)

	var buf strings.Builder
	buf.WriteString("public InputFieldMarshaller marshaller() {\n")
	buf.WriteString("  return new InputFieldMarshaller() {\n")
	buf.WriteString("    @Override\n")
	buf.WriteString("    public void marshal(InputFieldWriter writer) throws IOException {\n")
	buf.WriteString(codegen.RenderStatements(statements, 3))
	buf.WriteString("    }\n")
	buf.WriteString("  };\n")
	buf.WriteString("}\n")

	return buf.String()
}
