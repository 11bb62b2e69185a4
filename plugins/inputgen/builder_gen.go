package inputgen

import (
	"fmt"
	"strings"

	"github.com/ktsosno/graphql-code-generator/codegen"
)

// builderFactory emits the static entry point to the nested builder.
func (g *ClassGenerator) builderFactory() string {
	return "public static Builder builder() {\n  return new Builder();\n}\n"
}

// builderClass emits the nested mutable builder: per-field slot, fluent
// setter per field, and a build() that enforces required fields.
func (g *ClassGenerator) builderClass(className string, fields []*FieldSpec) string {
	members := make([]string, 0, 2*len(fields)+2)

	for _, f := range fields {
		members = append(members, g.builderSlot(f))
	}
	members = append(members, "Builder() {\n}\n")
	for _, f := range fields {
		members = append(members, g.setter(f))
	}
	members = append(members, g.buildMethod(className, fields))

	return codegen.Block("public static final class Builder", members)
}

// builderSlot declares the mutable slot. Required fields start unset
// and must be supplied before build(); optional fields start as the
// explicit absent box.
func (g *ClassGenerator) builderSlot(f *FieldSpec) string {
	if f.Required {
		return fmt.Sprintf("private %s;\n", g.describe(f, true))
	}
	return fmt.Sprintf("private %s = Optional.absent();\n", g.describe(f, true))
}

// setter emits the fluent setter. Optional setters take the raw
// nullable value and box it on assignment, which is why the parameter
// is described unboxed.
func (g *ClassGenerator) setter(f *FieldSpec) string {
	var buf strings.Builder

	if f.Required {
		buf.WriteString(fmt.Sprintf("public Builder %s(%s) {\n", f.JavaName, g.describe(f, false)))
		buf.WriteString(fmt.Sprintf("  this.%s = %s;\n", f.JavaName, f.JavaName))
	} else {
		g.imports.Add("javax.annotation.Nullable")
		buf.WriteString(fmt.Sprintf("public Builder %s(@Nullable %s) {\n", f.JavaName, g.describe(f, false)))
		buf.WriteString(fmt.Sprintf("  this.%s = Optional.fromNullable(%s);\n", f.JavaName, f.JavaName))
	}
	buf.WriteString("  return this;\n")
	buf.WriteString("}\n")

	return buf.String()
}

// buildMethod null-checks every required field, naming the offending
// field, before invoking the class constructor with all fields in
// declaration order.
func (g *ClassGenerator) buildMethod(className string, fields []*FieldSpec) string {
	var statements []codegen.Statement
	args := make([]string, 0, len(fields))

	for _, f := range fields {
		args = append(args, f.JavaName)
		if !f.Required {
			continue
		}
		statements = append(statements, &codegen.IfStatement{
			Condition: f.JavaName + " == null",
			Body: []codegen.Statement{
				&codegen.ThrowStatement{
					Exception: "IllegalStateException",
					Message:   fmt.Sprintf("%s can't be null", f.JavaName),
				},
			},
		})
	}
	statements = append(statements, &codegen.ReturnStatement{
		Value: fmt.Sprintf("new %s(%s)", className, strings.Join(args, ", ")),
	})

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("public %s build() {\n", className))
	buf.WriteString(codegen.RenderStatements(statements, 1))
	buf.WriteString("}\n")

	return buf.String()
}
