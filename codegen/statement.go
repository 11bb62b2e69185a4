package codegen

import (
	"fmt"
	"strings"
)

// Statement is a node in the generated-code AST.
//
// String returns the rendered Java text. The first line carries no
// indentation (the caller indents it); nested lines are indented
// relative to the given level.
type Statement interface {
	String(indent int) string
}

// indentUnit is the indentation step of generated Java source.
const indentUnit = "  "

// RawStatement is a single verbatim line, semicolon included.
//
// Example: writer.writeString("name", name);
type RawStatement struct {
	Code string
}

func (r *RawStatement) String(_ int) string {
	return r.Code
}

// IfStatement is a guard block.
//
// Example:
//
//	if (limit.defined) {
//	  writer.writeInt("limit", limit.value);
//	}
type IfStatement struct {
	Condition string
	Body      []Statement
}

func (i *IfStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)

	buf.WriteString(fmt.Sprintf("if (%s) {\n", i.Condition))
	for _, stmt := range i.Body {
		buf.WriteString(tabs + indentUnit)
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// ForEachStatement is an enhanced for loop over a collection.
//
// Example:
//
//	for (final String $item : tags.value) {
//	  listItemWriter.writeString($item);
//	}
type ForEachStatement struct {
	ItemType string // declared item type, e.g. "String"
	ItemVar  string // loop variable name, e.g. "$item"
	Iterable string // iterated expression, e.g. "tags.value"
	Body     []Statement
}

func (f *ForEachStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)

	buf.WriteString(fmt.Sprintf("for (final %s %s : %s) {\n", f.ItemType, f.ItemVar, f.Iterable))
	for _, stmt := range f.Body {
		buf.WriteString(tabs + indentUnit)
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// ThrowStatement throws an exception constructed with a message literal.
//
// Example: throw new IllegalStateException("name can't be null");
type ThrowStatement struct {
	Exception string
	Message   string
}

func (t *ThrowStatement) String(_ int) string {
	return fmt.Sprintf("throw new %s(%q);", t.Exception, t.Message)
}

// ReturnStatement is a return statement. An empty Value renders a bare
// return.
type ReturnStatement struct {
	Value string
}

func (r *ReturnStatement) String(_ int) string {
	if r.Value == "" {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

// ListWriterStatement is the anonymous list-writer handed to
// writer.writeList. The Body iterates the field's items and invokes the
// per-item writer call.
//
// Example:
//
//	writer.writeList("tags", new InputFieldWriter.ListWriter() {
//	  @Override
//	  public void write(InputFieldWriter.ListItemWriter listItemWriter) throws IOException {
//	    for (final String $item : tags.value) {
//	      listItemWriter.writeString($item);
//	    }
//	  }
//	});
type ListWriterStatement struct {
	Writer    string // receiver of the writeList call, e.g. "writer"
	FieldName string // schema field name passed as the first argument
	Body      []Statement
}

func (l *ListWriterStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)

	buf.WriteString(fmt.Sprintf("%s.writeList(%q, new InputFieldWriter.ListWriter() {\n", l.Writer, l.FieldName))
	buf.WriteString(tabs + indentUnit + "@Override\n")
	buf.WriteString(tabs + indentUnit + "public void write(InputFieldWriter.ListItemWriter listItemWriter) throws IOException {\n")
	for _, stmt := range l.Body {
		buf.WriteString(tabs + indentUnit + indentUnit)
		buf.WriteString(stmt.String(indent + 2))
		buf.WriteString("\n")
	}
	buf.WriteString(tabs + indentUnit + "}\n")
	buf.WriteString(tabs + "});")

	return buf.String()
}

// RenderStatements renders statements one per line at the given level,
// every line indented.
func RenderStatements(statements []Statement, indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)
	for _, stmt := range statements {
		buf.WriteString(tabs)
		buf.WriteString(stmt.String(indent))
		buf.WriteString("\n")
	}
	return buf.String()
}
