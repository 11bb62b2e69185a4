package introspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/validator"
)

func strptr(s string) *string { return &s }

func named(name string) TypeRef {
	return TypeRef{Kind: TypeKindScalar, Name: strptr(name)}
}

func nonNull(of TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindNonNull, OfType: &of}
}

func list(of TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindList, OfType: &of}
}

func testResponse() Query {
	var res Query
	res.Schema.QueryType.Name = strptr("Query")
	res.Schema.Types = FullTypes{
		{Kind: TypeKindScalar, Name: strptr("String")},
		{Kind: TypeKindScalar, Name: strptr("ID")},
		{Kind: TypeKindScalar, Name: strptr("Boolean")},
		{
			Kind: TypeKindObject,
			Name: strptr("Query"),
			Fields: []*FieldValue{
				{
					Name: "search",
					Type: named("String"),
					Args: []*InputValue{
						{Name: "filter", Type: TypeRef{Kind: TypeKindInputObject, Name: strptr("Filter")}},
					},
				},
			},
		},
		{
			Kind:        TypeKindInputObject,
			Name:        strptr("Filter"),
			Description: strptr("A search filter."),
			InputFields: []*InputValue{
				{Name: "name", Type: nonNull(named("String"))},
				{Name: "ids", Type: list(nonNull(named("ID")))},
				{Name: "kind", Type: TypeRef{Kind: TypeKindEnum, Name: strptr("Kind")}},
			},
		},
		{
			Kind: TypeKindEnum,
			Name: strptr("Kind"),
			EnumValues: []*EnumValue{
				{Name: "EXACT"},
				{Name: "FUZZY", IsDeprecated: true, DeprecationReason: strptr("Prefer EXACT.")},
			},
		},
		// Reflection types must be dropped.
		{Kind: TypeKindObject, Name: strptr("__Schema")},
	}
	res.Schema.Directives = []*DirectiveType{
		{
			Name:      "deprecated",
			Locations: []string{"FIELD_DEFINITION", "ENUM_VALUE"},
			Args: []*InputValue{
				{Name: "reason", Type: named("String")},
			},
		},
	}

	return res
}

func TestSchemaFromIntrospection(t *testing.T) {
	t.Parallel()

	doc := SchemaFromIntrospection("https://api.example.com/graphql", testResponse())

	schema, err := validator.ValidateSchemaDocument(doc)
	require.NoError(t, err)

	assert.NotNil(t, schema.Query)
	assert.Nil(t, schema.Mutation)
	assert.Nil(t, schema.Types["__Schema"])

	filter := schema.Types["Filter"]
	require.NotNil(t, filter)
	assert.Equal(t, ast.InputObject, filter.Kind)
	assert.Equal(t, "A search filter.", filter.Description)
	require.Len(t, filter.Fields, 3)

	name := filter.Fields[0]
	assert.Equal(t, "String", name.Type.NamedType)
	assert.True(t, name.Type.NonNull)

	ids := filter.Fields[1]
	assert.Empty(t, ids.Type.NamedType)
	assert.False(t, ids.Type.NonNull)
	require.NotNil(t, ids.Type.Elem)
	assert.Equal(t, "ID", ids.Type.Elem.NamedType)
	assert.True(t, ids.Type.Elem.NonNull)

	kind := schema.Types["Kind"]
	require.NotNil(t, kind)
	require.Len(t, kind.EnumValues, 2)
	deprecated := kind.EnumValues[1].Directives.ForName("deprecated")
	require.NotNil(t, deprecated)
	require.NotNil(t, deprecated.Arguments.ForName("reason"))
	assert.Equal(t, "Prefer EXACT.", deprecated.Arguments.ForName("reason").Value.Raw)
}

func TestAstType(t *testing.T) {
	t.Parallel()

	pos := &ast.Position{Src: &ast.Source{Name: "test"}}

	typ := astType(pos, &TypeRef{Kind: TypeKindNonNull, OfType: &TypeRef{
		Kind: TypeKindList,
		OfType: &TypeRef{Kind: TypeKindNonNull, OfType: &TypeRef{
			Kind: TypeKindScalar,
			Name: strptr("ID"),
		}},
	}})

	// [ID!]!
	assert.Empty(t, typ.NamedType)
	assert.True(t, typ.NonNull)
	require.NotNil(t, typ.Elem)
	assert.Equal(t, "ID", typ.Elem.NamedType)
	assert.True(t, typ.Elem.NonNull)
}
