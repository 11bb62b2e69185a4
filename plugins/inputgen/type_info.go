package inputgen

import "github.com/vektah/gqlparser/v2/ast"

// TypeKind classifies the schema type behind a field for marshalling
// purposes.
type TypeKind string

const (
	KindScalar TypeKind = "Scalar"
	KindEnum   TypeKind = "Enum"
	KindObject TypeKind = "InputObject"
)

// FieldSpec is the per-field information the emitters work from. It is
// derived once per field during generation and not shared across
// fields.
type FieldSpec struct {
	Name        string    // schema field name, used as the wire name
	JavaName    string    // escaped Java member name
	Type        *ast.Type // schema type reference
	JavaType    string    // resolved Java type, list-wrapped
	ItemType    string    // resolved Java item type when IsList
	Required    bool      // type reference is non-null at the top level
	IsList      bool      // type reference is a list (possibly non-null)
	Kind        TypeKind
	WriteMethod string // writer method for scalar fields
}

// declaredType is the type of the stored field: the bare resolved type
// for required fields, the presence box otherwise.
func (f *FieldSpec) declaredType() string {
	if f.Required {
		return f.JavaType
	}
	return "Optional<" + f.JavaType + ">"
}
