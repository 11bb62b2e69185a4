package inputgen

import (
	"fmt"

	"github.com/ktsosno/graphql-code-generator/codegen"
)

// MarshallerBuilder builds the statements of the generated marshal
// method. The branching over field shapes lives here, on the statement
// tree; the text layout lives in the codegen renderers.
type MarshallerBuilder struct {
	table *WriterTable
}

// NewMarshallerBuilder creates a builder using the given writer table.
func NewMarshallerBuilder(table *WriterTable) *MarshallerBuilder {
	return &MarshallerBuilder{table: table}
}

// BuildMarshalMethod constructs the per-field write statements in
// declaration order. Order is not a correctness requirement of the
// writer interface; it keeps the output deterministic and diff-stable.
func (b *MarshallerBuilder) BuildMarshalMethod(fields []*FieldSpec) []codegen.Statement {
	statements := make([]codegen.Statement, 0, len(fields))
	for _, f := range fields {
		statements = append(statements, b.fieldStatement(f))
	}
	return statements
}

// fieldStatement selects the writer call for one field and wraps it in
// a presence guard when the field is optional.
func (b *MarshallerBuilder) fieldStatement(f *FieldSpec) codegen.Statement {
	var stmt codegen.Statement
	if f.IsList {
		stmt = b.listStatement(f)
	} else {
		stmt = b.valueStatement(f)
	}

	if !f.Required {
		stmt = &codegen.IfStatement{
			Condition: f.JavaName + ".defined",
			Body:      []codegen.Statement{stmt},
		}
	}

	return stmt
}

// valueStatement is the non-list writer call. Required fields pass the
// stored value directly; optional fields pass the box's payload.
// Object-typed fields marshal through the value's own marshaller, with
// a null-coalescing guard for optional fields whose payload may be an
// explicit null.
func (b *MarshallerBuilder) valueStatement(f *FieldSpec) codegen.Statement {
	value := f.JavaName
	if !f.Required {
		value += ".value"
	}

	switch f.Kind {
	case KindObject:
		arg := value + ".marshaller()"
		if !f.Required {
			arg = fmt.Sprintf("%s != null ? %s.marshaller() : null", value, value)
		}
		return &codegen.RawStatement{Code: fmt.Sprintf("writer.writeObject(%q, %s);", f.Name, arg)}
	case KindEnum:
		arg := value + ".name()"
		if !f.Required {
			arg = fmt.Sprintf("%s != null ? %s.name() : null", value, value)
		}
		return &codegen.RawStatement{Code: fmt.Sprintf("writer.writeString(%q, %s);", f.Name, arg)}
	default:
		return &codegen.RawStatement{Code: fmt.Sprintf("writer.%s(%q, %s);", f.WriteMethod, f.Name, value)}
	}
}

// listStatement is the nested anonymous list-writer iterating the
// field's items.
func (b *MarshallerBuilder) listStatement(f *FieldSpec) codegen.Statement {
	iterable := f.JavaName
	if !f.Required {
		iterable += ".value"
	}

	return &codegen.ListWriterStatement{
		Writer:    "writer",
		FieldName: f.Name,
		Body: []codegen.Statement{
			&codegen.ForEachStatement{
				ItemType: f.ItemType,
				ItemVar:  "$item",
				Iterable: iterable,
				Body:     []codegen.Statement{b.itemStatement(f)},
			},
		},
	}
}

// itemStatement is the single-argument per-item call. Object items
// always marshal themselves without a null check; list items are
// assumed non-null.
func (b *MarshallerBuilder) itemStatement(f *FieldSpec) codegen.Statement {
	switch f.Kind {
	case KindObject:
		return &codegen.RawStatement{Code: "listItemWriter.writeObject($item.marshaller());"}
	case KindEnum:
		return &codegen.RawStatement{Code: "listItemWriter.writeString($item.name());"}
	default:
		return &codegen.RawStatement{Code: fmt.Sprintf("listItemWriter.%s($item);", f.WriteMethod)}
	}
}
