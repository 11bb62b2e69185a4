package inputgen

import "maps"

// writeCustomMethod handles scalars with no dedicated writer method.
// Generation never fails on an unmapped scalar; it degrades to this
// generic call.
const writeCustomMethod = "writeCustom"

// WriterTable maps scalar type names to the InputFieldWriter methods
// the marshaller calls for them. It is a plain value so alternative
// serialization targets can swap their own table in.
type WriterTable struct {
	methods map[string]string
}

// NewWriterTable returns the table for the built-in scalars.
func NewWriterTable() *WriterTable {
	return &WriterTable{methods: map[string]string{
		"ID":      "writeString",
		"String":  "writeString",
		"Int":     "writeInt",
		"Float":   "writeDouble",
		"Boolean": "writeBoolean",
	}}
}

// WithMethods returns a copy of the table with the given scalar-to-
// method entries added or overridden.
func (t *WriterTable) WithMethods(methods map[string]string) *WriterTable {
	merged := maps.Clone(t.methods)
	maps.Copy(merged, methods)
	return &WriterTable{methods: merged}
}

// Method returns the writer method for the scalar, falling back to the
// generic custom call for unmapped scalars.
func (t *WriterTable) Method(scalar string) string {
	if method, ok := t.methods[scalar]; ok {
		return method
	}
	return writeCustomMethod
}
