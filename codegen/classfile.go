package codegen

import (
	"fmt"
	"strings"
)

// ClassSpec is the assembled skeleton of one generated Java file. The
// body members arrive as pre-rendered text blocks; this printer only
// lays them out.
type ClassSpec struct {
	Package    string
	Imports    []string
	Doc        string // javadoc body without the comment markers
	Modifiers  string // e.g. "public final"
	Keyword    string // "class" or "enum"
	Name       string
	Implements []string
	Body       []string // pre-rendered member blocks, unindented
}

// Source renders the complete .java file text.
func (s *ClassSpec) Source() string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("package %s;\n", s.Package))

	if len(s.Imports) > 0 {
		buf.WriteString("\n")
		for _, imp := range s.Imports {
			buf.WriteString(fmt.Sprintf("import %s;\n", imp))
		}
	}

	buf.WriteString("\n")
	if s.Doc != "" {
		buf.WriteString(Javadoc(s.Doc, 0))
	}
	buf.WriteString(Block(s.declaration(), s.Body))

	return buf.String()
}

func (s *ClassSpec) declaration() string {
	decl := fmt.Sprintf("%s %s %s", s.Modifiers, s.Keyword, s.Name)
	if len(s.Implements) > 0 {
		decl += " implements " + strings.Join(s.Implements, ", ")
	}
	return decl
}

// GeneratedClass is the finished output for one schema type: the class
// name, the full file source, and the ordered distinct imports the
// class required.
type GeneratedClass struct {
	Name    string
	Imports []string
	Source  string
}

// Block renders a brace-delimited declaration with a blank line between
// members. Members are indented one level; the header is not.
func Block(header string, members []string) string {
	var buf strings.Builder

	buf.WriteString(header + " {\n")
	for i, member := range members {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(Indent(member, 1))
	}
	buf.WriteString("}\n")

	return buf.String()
}

// Indent prefixes every non-empty line of text with level indent units.
func Indent(text string, level int) string {
	if level == 0 {
		return text
	}
	prefix := strings.Repeat(indentUnit, level)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Javadoc renders a javadoc comment at the given indent level. Empty
// text renders nothing.
func Javadoc(text string, level int) string {
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(indentUnit, level)

	var buf strings.Builder
	buf.WriteString(prefix + "/**\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		buf.WriteString(strings.TrimRight(prefix+" * "+line, " ") + "\n")
	}
	buf.WriteString(prefix + " */\n")

	return buf.String()
}
