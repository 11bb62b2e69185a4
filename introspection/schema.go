package introspection

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// SchemaFromIntrospection converts an introspection response into a
// schema document that validator.ValidateSchemaDocument accepts.
// Built-in types (the "__" namespace) are dropped; everything else,
// including the built-in scalars the server reports, is kept so that
// later type lookups resolve.
func SchemaFromIntrospection(endpoint string, res Query) *ast.SchemaDocument {
	pos := &ast.Position{Src: &ast.Source{Name: endpoint}}

	doc := &ast.SchemaDocument{}

	schemaDef := &ast.SchemaDefinition{Position: pos}
	if res.Schema.QueryType.Name != nil {
		schemaDef.OperationTypes = append(schemaDef.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Query,
			Type:      *res.Schema.QueryType.Name,
			Position:  pos,
		})
	}
	if res.Schema.MutationType != nil && res.Schema.MutationType.Name != nil {
		schemaDef.OperationTypes = append(schemaDef.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Mutation,
			Type:      *res.Schema.MutationType.Name,
			Position:  pos,
		})
	}
	if res.Schema.SubscriptionType != nil && res.Schema.SubscriptionType.Name != nil {
		schemaDef.OperationTypes = append(schemaDef.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Subscription,
			Type:      *res.Schema.SubscriptionType.Name,
			Position:  pos,
		})
	}
	doc.Schema = append(doc.Schema, schemaDef)

	for _, typ := range res.Schema.Types {
		if typ.Name == nil || strings.HasPrefix(*typ.Name, "__") {
			continue
		}
		doc.Definitions = append(doc.Definitions, definition(pos, typ))
	}

	for _, directive := range res.Schema.Directives {
		doc.Directives = append(doc.Directives, directiveDefinition(pos, directive))
	}

	return doc
}

func definition(pos *ast.Position, typ *FullType) *ast.Definition {
	def := &ast.Definition{
		Name:        *typ.Name,
		Description: deref(typ.Description),
		Position:    pos,
	}

	switch typ.Kind {
	case TypeKindScalar:
		def.Kind = ast.Scalar
	case TypeKindObject:
		def.Kind = ast.Object
		def.Fields = fieldList(pos, typ.Fields)
		for _, iface := range typ.Interfaces {
			def.Interfaces = append(def.Interfaces, *iface.Name)
		}
	case TypeKindInterface:
		def.Kind = ast.Interface
		def.Fields = fieldList(pos, typ.Fields)
	case TypeKindUnion:
		def.Kind = ast.Union
		for _, possible := range typ.PossibleTypes {
			def.Types = append(def.Types, *possible.Name)
		}
	case TypeKindEnum:
		def.Kind = ast.Enum
		for _, value := range typ.EnumValues {
			ev := &ast.EnumValueDefinition{
				Name:        value.Name,
				Description: deref(value.Description),
				Position:    pos,
			}
			if value.IsDeprecated {
				ev.Directives = append(ev.Directives, deprecatedDirective(pos, value.DeprecationReason))
			}
			def.EnumValues = append(def.EnumValues, ev)
		}
	case TypeKindInputObject:
		def.Kind = ast.InputObject
		for _, input := range typ.InputFields {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name:        input.Name,
				Description: deref(input.Description),
				Type:        astType(pos, &input.Type),
				Position:    pos,
			})
		}
	}

	return def
}

func fieldList(pos *ast.Position, fields []*FieldValue) ast.FieldList {
	list := make(ast.FieldList, 0, len(fields))
	for _, field := range fields {
		fd := &ast.FieldDefinition{
			Name:        field.Name,
			Description: deref(field.Description),
			Type:        astType(pos, &field.Type),
			Position:    pos,
		}
		for _, arg := range field.Args {
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name:        arg.Name,
				Description: deref(arg.Description),
				Type:        astType(pos, &arg.Type),
				Position:    pos,
			})
		}
		if field.IsDeprecated {
			fd.Directives = append(fd.Directives, deprecatedDirective(pos, field.DeprecationReason))
		}
		list = append(list, fd)
	}

	return list
}

func directiveDefinition(pos *ast.Position, directive *DirectiveType) *ast.DirectiveDefinition {
	def := &ast.DirectiveDefinition{
		Name:        directive.Name,
		Description: deref(directive.Description),
		Position:    pos,
	}
	for _, loc := range directive.Locations {
		def.Locations = append(def.Locations, ast.DirectiveLocation(loc))
	}
	for _, arg := range directive.Args {
		def.Arguments = append(def.Arguments, &ast.ArgumentDefinition{
			Name:        arg.Name,
			Description: deref(arg.Description),
			Type:        astType(pos, &arg.Type),
			Position:    pos,
		})
	}

	return def
}

func deprecatedDirective(pos *ast.Position, reason *string) *ast.Directive {
	directive := &ast.Directive{Name: "deprecated", Position: pos}
	if reason != nil {
		directive.Arguments = ast.ArgumentList{{
			Name:     "reason",
			Value:    &ast.Value{Raw: *reason, Kind: ast.StringValue, Position: pos},
			Position: pos,
		}}
	}

	return directive
}

// astType rebuilds the recursive type expression. NON_NULL marks the
// wrapped type; LIST wraps its element; everything else is a named
// reference.
func astType(pos *ast.Position, ref *TypeRef) *ast.Type {
	switch ref.Kind {
	case TypeKindNonNull:
		t := astType(pos, ref.OfType)
		t.NonNull = true
		return t
	case TypeKindList:
		return ast.ListType(astType(pos, ref.OfType), pos)
	default:
		return ast.NamedType(*ref.Name, pos)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
