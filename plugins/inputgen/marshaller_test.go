package inputgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshallerBuilder_fieldStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field *FieldSpec
		want  string
	}{
		{
			name: "required scalar writes unguarded",
			field: &FieldSpec{
				Name: "name", JavaName: "name", JavaType: "String",
				Required: true, Kind: KindScalar, WriteMethod: "writeString",
			},
			want: `writer.writeString("name", name);`,
		},
		{
			name: "optional scalar is wrapped in a presence guard",
			field: &FieldSpec{
				Name: "limit", JavaName: "limit", JavaType: "Long",
				Kind: KindScalar, WriteMethod: "writeInt",
			},
			want: "if (limit.defined) {\n" +
				"  writer.writeInt(\"limit\", limit.value);\n" +
				"}",
		},
		{
			name: "unmapped scalar falls back to writeCustom",
			field: &FieldSpec{
				Name: "payload", JavaName: "payload", JavaType: "Object",
				Kind: KindScalar, WriteMethod: "writeCustom",
			},
			want: "if (payload.defined) {\n" +
				"  writer.writeCustom(\"payload\", payload.value);\n" +
				"}",
		},
		{
			name: "required enum writes its name",
			field: &FieldSpec{
				Name: "kind", JavaName: "kind", JavaType: "Kind",
				Required: true, Kind: KindEnum,
			},
			want: `writer.writeString("kind", kind.name());`,
		},
		{
			name: "optional enum null-coalesces the name call",
			field: &FieldSpec{
				Name: "kind", JavaName: "kind", JavaType: "Kind",
				Kind: KindEnum,
			},
			want: "if (kind.defined) {\n" +
				"  writer.writeString(\"kind\", kind.value != null ? kind.value.name() : null);\n" +
				"}",
		},
		{
			name: "required object passes its marshaller with no null check",
			field: &FieldSpec{
				Name: "ref", JavaName: "ref", JavaType: "SubFilter",
				Required: true, Kind: KindObject,
			},
			want: `writer.writeObject("ref", ref.marshaller());`,
		},
		{
			name: "optional object null-coalesces the marshaller",
			field: &FieldSpec{
				Name: "nested", JavaName: "nested", JavaType: "SubFilter",
				Kind: KindObject,
			},
			want: "if (nested.defined) {\n" +
				"  writer.writeObject(\"nested\", nested.value != null ? nested.value.marshaller() : null);\n" +
				"}",
		},
		{
			name: "optional scalar list guards and uses the single-argument item call",
			field: &FieldSpec{
				Name: "tags", JavaName: "tags", JavaType: "List<String>", ItemType: "String",
				IsList: true, Kind: KindScalar, WriteMethod: "writeString",
			},
			want: "if (tags.defined) {\n" +
				"  writer.writeList(\"tags\", new InputFieldWriter.ListWriter() {\n" +
				"    @Override\n" +
				"    public void write(InputFieldWriter.ListItemWriter listItemWriter) throws IOException {\n" +
				"      for (final String $item : tags.value) {\n" +
				"        listItemWriter.writeString($item);\n" +
				"      }\n" +
				"    }\n" +
				"  });\n" +
				"}",
		},
		{
			name: "required object list marshals items unchecked",
			field: &FieldSpec{
				Name: "subs", JavaName: "subs", JavaType: "List<SubFilter>", ItemType: "SubFilter",
				IsList: true, Required: true, Kind: KindObject,
			},
			want: "writer.writeList(\"subs\", new InputFieldWriter.ListWriter() {\n" +
				"  @Override\n" +
				"  public void write(InputFieldWriter.ListItemWriter listItemWriter) throws IOException {\n" +
				"    for (final SubFilter $item : subs) {\n" +
				"      listItemWriter.writeObject($item.marshaller());\n" +
				"    }\n" +
				"  }\n" +
				"});",
		},
		{
			name: "enum list writes item names",
			field: &FieldSpec{
				Name: "kinds", JavaName: "kinds", JavaType: "List<Kind>", ItemType: "Kind",
				IsList: true, Required: true, Kind: KindEnum,
			},
			want: "writer.writeList(\"kinds\", new InputFieldWriter.ListWriter() {\n" +
				"  @Override\n" +
				"  public void write(InputFieldWriter.ListItemWriter listItemWriter) throws IOException {\n" +
				"    for (final Kind $item : kinds) {\n" +
				"      listItemWriter.writeString($item.name());\n" +
				"    }\n" +
				"  }\n" +
				"});",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewMarshallerBuilder(NewWriterTable())
			got := b.fieldStatement(tt.field).String(0)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("statement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshallerBuilder_BuildMarshalMethod_order(t *testing.T) {
	t.Parallel()

	fields := []*FieldSpec{
		{Name: "b", JavaName: "b", JavaType: "String", Required: true, Kind: KindScalar, WriteMethod: "writeString"},
		{Name: "a", JavaName: "a", JavaType: "String", Required: true, Kind: KindScalar, WriteMethod: "writeString"},
	}

	statements := NewMarshallerBuilder(NewWriterTable()).BuildMarshalMethod(fields)
	if len(statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(statements))
	}
	// Declaration order, not alphabetical.
	if got := statements[0].String(0); got != `writer.writeString("b", b);` {
		t.Errorf("first statement = %q", got)
	}
	if got := statements[1].String(0); got != `writer.writeString("a", a);` {
		t.Errorf("second statement = %q", got)
	}
}
