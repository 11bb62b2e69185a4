package inputgen

import (
	"fmt"
	"strings"
)

// fieldDecls emits one private final field per input field, in
// declaration order.
func (g *ClassGenerator) fieldDecls(fields []*FieldSpec) []string {
	decls := make([]string, 0, len(fields))
	for _, f := range fields {
		decls = append(decls, fmt.Sprintf("private final %s;\n", g.describe(f, true)))
	}
	return decls
}

// constructor emits the package-private constructor taking every field
// in declaration order and assigning each to its matching slot.
func (g *ClassGenerator) constructor(className string, fields []*FieldSpec) string {
	params := make([]string, 0, len(fields))
	for _, f := range fields {
		params = append(params, g.describe(f, true))
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("%s(%s) {\n", className, strings.Join(params, ", ")))
	for _, f := range fields {
		buf.WriteString(fmt.Sprintf("  this.%s = %s;\n", f.JavaName, f.JavaName))
	}
	buf.WriteString("}\n")

	return buf.String()
}

// accessors emits one getter per field, named after the field. Optional
// accessors are annotated @Nullable: the box itself is never null, but
// the annotation documents intent for generated-code consumers.
func (g *ClassGenerator) accessors(fields []*FieldSpec) []string {
	getters := make([]string, 0, len(fields))
	for _, f := range fields {
		var returnType string
		if f.Required {
			g.imports.Add("javax.annotation.Nonnull")
			returnType = "@Nonnull " + f.declaredType()
		} else {
			g.imports.Add("javax.annotation.Nullable")
			returnType = "@Nullable " + f.declaredType()
		}

		getters = append(getters, fmt.Sprintf("public %s %s() {\n  return this.%s;\n}\n", returnType, f.JavaName, f.JavaName))
	}
	return getters
}
