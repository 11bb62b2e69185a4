package codegen

import (
	"github.com/go-openapi/inflect"
)

// javaReserved lists Java keywords and literals that cannot be used as
// member or parameter names.
var javaReserved = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {},
}

// JavaTypeName derives a Java class name from a schema type name.
// GraphQL type names are conventionally already UpperCamel; Camelize
// also normalizes snake_case names from less tidy schemas.
func JavaTypeName(name string) string {
	return inflect.Camelize(name)
}

// JavaMemberName derives a Java field, parameter, or method name from a
// schema field name, escaping reserved words with a trailing underscore.
func JavaMemberName(name string) string {
	member := inflect.CamelizeDownFirst(name)
	if _, reserved := javaReserved[member]; reserved {
		return member + "_"
	}
	return member
}

// SimpleName returns the unqualified part of a fully-qualified Java
// type name. A name without a package is returned unchanged.
func SimpleName(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[i+1:]
		}
	}
	return qualified
}

// Qualified reports whether the Java type name carries a package.
func Qualified(name string) bool {
	return name != SimpleName(name)
}
