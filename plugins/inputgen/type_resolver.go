package inputgen

import (
	"fmt"
	"maps"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ktsosno/graphql-code-generator/codegen"
)

// defaultScalarMappings are the Java types for the built-in scalars.
// java.lang types need no import.
var defaultScalarMappings = map[string]string{
	"ID":      "String",
	"String":  "String",
	"Int":     "Long",
	"Float":   "Double",
	"Boolean": "Boolean",
}

// TypeResolver maps schema type references to Java type names and
// records the imports each resolution requires in the generator's
// import set.
type TypeResolver struct {
	schema  *ast.Schema
	scalars map[string]string // scalar name -> fully-qualified Java type
	pkg     string            // output package of generated classes
	imports *codegen.ImportSet
}

// NewTypeResolver creates a resolver over the schema. The extra scalar
// mappings override and extend the built-in ones.
func NewTypeResolver(schema *ast.Schema, pkg string, scalarMappings map[string]string, imports *codegen.ImportSet) *TypeResolver {
	scalars := maps.Clone(defaultScalarMappings)
	maps.Copy(scalars, scalarMappings)

	return &TypeResolver{
		schema:  schema,
		scalars: scalars,
		pkg:     pkg,
		imports: imports,
	}
}

// Resolve maps a type reference to a Java type name. With wrapLists,
// list references wrap the element type in List<T>; otherwise the
// element type is returned bare. An unknown named type is a schema
// contract violation and fails resolution.
func (r *TypeResolver) Resolve(t *ast.Type, wrapLists bool) (string, error) {
	if t.NamedType == "" {
		inner, err := r.Resolve(t.Elem, wrapLists)
		if err != nil {
			return "", err
		}
		if !wrapLists {
			return inner, nil
		}
		r.imports.Add("java.util.List")
		return fmt.Sprintf("List<%s>", inner), nil
	}

	def := r.schema.Types[t.NamedType]
	if def == nil {
		return "", fmt.Errorf("unknown type %q referenced from input field", t.NamedType)
	}

	switch def.Kind {
	case ast.Scalar:
		mapped, ok := r.scalars[def.Name]
		if !ok {
			// Unmapped custom scalars degrade to Object; the
			// marshaller pairs this with writeCustom.
			return "Object", nil
		}
		if codegen.Qualified(mapped) {
			r.imports.Add(mapped)
		}
		return codegen.SimpleName(mapped), nil
	case ast.Enum:
		// Enums are generated into the same output package, so the
		// reference needs no import.
		return codegen.JavaTypeName(def.Name), nil
	case ast.InputObject:
		name := codegen.JavaTypeName(def.Name)
		r.imports.Add(r.pkg + "." + name)
		return name, nil
	default:
		return "", fmt.Errorf("type %q has kind %s, which cannot appear in input position", def.Name, def.Kind)
	}
}

// BaseDefinition unwraps the reference to its named base type and looks
// it up in the schema.
func (r *TypeResolver) BaseDefinition(t *ast.Type) (*ast.Definition, error) {
	for t.NamedType == "" {
		t = t.Elem
	}
	def := r.schema.Types[t.NamedType]
	if def == nil {
		return nil, fmt.Errorf("unknown type %q referenced from input field", t.NamedType)
	}
	return def, nil
}
