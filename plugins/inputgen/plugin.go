// Package inputgen generates immutable Java value classes for the
// input object types of a GraphQL schema.
//
// Each generated class carries:
//   - one private final field per schema field, optional fields boxed
//     in the runtime's presence-tracking Optional
//   - a positional constructor and one accessor per field
//   - a marshaller() method, satisfying the runtime's InputType
//     interface, serializing the fields through the runtime's
//     InputFieldWriter
//   - a nested fluent Builder enforcing required fields on build()
package inputgen

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ktsosno/graphql-code-generator/codegen"
	"github.com/ktsosno/graphql-code-generator/config"
)

// Plugin generates one Java value class per input object type.
type Plugin struct {
	cfg    *config.Config
	schema *ast.Schema
}

// New creates a new inputgen plugin instance.
func New(cfg *config.Config) *Plugin {
	return &Plugin{
		cfg:    cfg,
		schema: cfg.LoadedSchema,
	}
}

// Name returns this plugin's name.
func (p *Plugin) Name() string {
	return "inputgen"
}

// Definitions returns the schema's input object types in sorted name
// order, for deterministic generation.
func (p *Plugin) Definitions() []*ast.Definition {
	var defs []*ast.Definition
	for name, def := range p.schema.Types {
		if def.Kind != ast.InputObject || strings.HasPrefix(name, "__") {
			continue
		}
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b *ast.Definition) int {
		return strings.Compare(a.Name, b.Name)
	})

	return defs
}

// GenerateType generates the class for one definition. Every call uses
// a fresh ClassGenerator: the import set is instance-scoped state and
// must not leak across classes.
func (p *Plugin) GenerateType(def *ast.Definition) (*codegen.GeneratedClass, error) {
	return NewClassGenerator(p.schema, p.cfg).Generate(def)
}
