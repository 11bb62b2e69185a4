// Package enumgen generates one Java enum per GraphQL enum type.
package enumgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ktsosno/graphql-code-generator/codegen"
	"github.com/ktsosno/graphql-code-generator/config"
)

// Plugin generates Java enums for the schema's enum types.
type Plugin struct {
	cfg    *config.Config
	schema *ast.Schema
}

// New creates a new enumgen plugin instance.
func New(cfg *config.Config) *Plugin {
	return &Plugin{
		cfg:    cfg,
		schema: cfg.LoadedSchema,
	}
}

// Name returns this plugin's name.
func (p *Plugin) Name() string {
	return "enumgen"
}

// Definitions returns the schema's enum types in sorted name order.
func (p *Plugin) Definitions() []*ast.Definition {
	var defs []*ast.Definition
	for name, def := range p.schema.Types {
		if def.Kind != ast.Enum || strings.HasPrefix(name, "__") {
			continue
		}
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b *ast.Definition) int {
		return strings.Compare(a.Name, b.Name)
	})

	return defs
}

// GenerateType generates the enum source for one definition. Constants
// keep schema order; deprecated values carry @Deprecated.
func (p *Plugin) GenerateType(def *ast.Definition) (*codegen.GeneratedClass, error) {
	if def.Kind != ast.Enum {
		return nil, fmt.Errorf("type %q is %s, not an enum", def.Name, def.Kind)
	}

	name := codegen.JavaTypeName(def.Name)

	var constants strings.Builder
	for i, value := range def.EnumValues {
		if value.Description != "" {
			constants.WriteString(codegen.Javadoc(value.Description, 0))
		}
		if value.Directives.ForName("deprecated") != nil {
			constants.WriteString("@Deprecated\n")
		}
		constants.WriteString(value.Name)
		if i < len(def.EnumValues)-1 {
			constants.WriteString(",")
		}
		constants.WriteString("\n")
	}

	spec := &codegen.ClassSpec{
		Package:   p.cfg.Output.Package,
		Doc:       def.Description,
		Modifiers: "public",
		Keyword:   "enum",
		Name:      name,
		Body:      []string{constants.String()},
	}

	return &codegen.GeneratedClass{
		Name:   name,
		Source: spec.Source(),
	}, nil
}
