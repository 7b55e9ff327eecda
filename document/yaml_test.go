package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/docmatch/document"
)

func TestDecodeYAML_PreservesMappingOrder(t *testing.T) {
	doc, err := document.DecodeYAML([]byte("z: 1\na: 2\nm: 3\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var names []string
	for _, el := range doc {
		names = append(names, el.Name)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, names); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_Scalars(t *testing.T) {
	doc, err := document.DecodeYAML([]byte("s: hello\ni: 42\nf: 2.5\nb: true\nn: null\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cases := []struct {
		name string
		want document.Type
	}{
		{"s", document.TypeString},
		{"i", document.TypeInt},
		{"f", document.TypeDouble},
		{"b", document.TypeBool},
		{"n", document.TypeNull},
	}
	for _, tc := range cases {
		v, ok := doc.Get(tc.name)
		if !ok {
			t.Fatalf("missing field %q", tc.name)
		}
		if v.Type() != tc.want {
			t.Fatalf("field %q: expected %s, got %s", tc.name, tc.want, v.Type())
		}
	}
}

func TestDecodeYAML_SchemaShape(t *testing.T) {
	schema := []byte(`
type: object
properties:
  name:
    type: string
    minLength: 1
  age:
    type: number
    minimum: 0
`)
	doc, err := document.DecodeYAML(schema)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	props, ok := doc.Lookup("properties.name.type")
	if !ok {
		t.Fatalf("expected properties.name.type to resolve")
	}
	if s, _ := props.AsString(); s != "string" {
		t.Fatalf("expected \"string\", got %q", s)
	}
}

func TestDecodeYAML_RegexForm(t *testing.T) {
	doc, err := document.DecodeYAML([]byte("re:\n  $regex: '^a'\n  $options: ''\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	v, _ := doc.Get("re")
	src, opts, ok := v.AsRegex()
	if !ok {
		t.Fatalf("expected regex value, got %s", v.Type())
	}
	if src != "^a" || opts != "" {
		t.Fatalf("expected /^a/, got /%s/%s", src, opts)
	}
}

func TestDecodeYAML_RejectsSequenceTopLevel(t *testing.T) {
	if _, err := document.DecodeYAML([]byte("- 1\n- 2\n")); err == nil {
		t.Fatalf("expected error for top-level sequence")
	}
}
