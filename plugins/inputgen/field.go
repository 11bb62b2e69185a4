package inputgen

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ktsosno/graphql-code-generator/codegen"
)

// analyzeField derives the FieldSpec the emitters work from: resolved
// Java type, nullability, list shape, and the writer-call strategy.
func (g *ClassGenerator) analyzeField(field *ast.FieldDefinition) (*FieldSpec, error) {
	javaType, err := g.resolver.Resolve(field.Type, true)
	if err != nil {
		return nil, err
	}

	spec := &FieldSpec{
		Name:     field.Name,
		JavaName: codegen.JavaMemberName(field.Name),
		Type:     field.Type,
		JavaType: javaType,
		Required: field.Type.NonNull,
		IsList:   field.Type.NamedType == "",
	}

	if spec.IsList {
		itemType, err := g.resolver.Resolve(field.Type.Elem, true)
		if err != nil {
			return nil, err
		}
		spec.ItemType = itemType
	}

	def, err := g.resolver.BaseDefinition(field.Type)
	if err != nil {
		return nil, err
	}
	switch def.Kind {
	case ast.Scalar:
		spec.Kind = KindScalar
		spec.WriteMethod = g.table.Method(def.Name)
	case ast.Enum:
		spec.Kind = KindEnum
	case ast.InputObject:
		spec.Kind = KindObject
	default:
		return nil, fmt.Errorf("type %q has kind %s, which cannot appear in input position", def.Name, def.Kind)
	}

	return spec, nil
}

// describe renders the field's declaration, "<Type> <name>". Required
// fields carry the @Nonnull marker; optional fields are boxed in the
// presence-tracking Optional unless the caller handles nullability
// itself (builder setters take the raw nullable value).
func (g *ClassGenerator) describe(f *FieldSpec, boxOptional bool) string {
	if f.Required {
		g.imports.Add("javax.annotation.Nonnull")
		return fmt.Sprintf("@Nonnull %s %s", f.JavaType, f.JavaName)
	}
	if boxOptional {
		g.imports.Add(g.runtimePkg + ".Optional")
		return fmt.Sprintf("Optional<%s> %s", f.JavaType, f.JavaName)
	}
	return fmt.Sprintf("%s %s", f.JavaType, f.JavaName)
}
