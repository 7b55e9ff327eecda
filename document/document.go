package document

import "strings"

// Type discriminates the payload carried by a Value.
type Type int

const (
	TypeObject Type = iota
	TypeArray
	TypeString
	TypeInt
	TypeDouble
	TypeBool
	TypeNull
	TypeRegex
)

// Numeric reports whether the tag is one of the numeric subtypes.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeDouble
}

func (t Type) String() string {
	switch t {
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	}
	return "unknown"
}

// Value is an immutable tagged value.
type Value struct {
	t     Type
	doc   Document
	arr   []Value
	str   string // string payload, or regex pattern source
	flags string // regex options
	i     int64
	f     float64
	b     bool
}

// Constructors.

func Object(d Document) Value      { return Value{t: TypeObject, doc: d} }
func Array(vs []Value) Value       { return Value{t: TypeArray, arr: vs} }
func String(s string) Value        { return Value{t: TypeString, str: s} }
func Int(i int64) Value            { return Value{t: TypeInt, i: i} }
func Double(f float64) Value       { return Value{t: TypeDouble, f: f} }
func Bool(b bool) Value            { return Value{t: TypeBool, b: b} }
func Null() Value                  { return Value{t: TypeNull} }
func Regex(src, opts string) Value { return Value{t: TypeRegex, str: src, flags: opts} }

// Type returns the value's tag.
func (v Value) Type() Type { return v.t }

// IsNumber reports whether the value carries a numeric payload.
func (v Value) IsNumber() bool { return v.t.Numeric() }

// Accessors return the payload and whether the tag matched.

func (v Value) AsDocument() (Document, bool) {
	if v.t != TypeObject {
		return nil, false
	}
	return v.doc, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.t != TypeArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsString() (string, bool) {
	if v.t != TypeString {
		return "", false
	}
	return v.str, true
}

func (v Value) AsInt() (int64, bool) {
	if v.t != TypeInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsDouble() (float64, bool) {
	if v.t != TypeDouble {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsBool() (bool, bool) {
	if v.t != TypeBool {
		return false, false
	}
	return v.b, true
}

// AsRegex returns the pattern source and options.
func (v Value) AsRegex() (src, opts string, ok bool) {
	if v.t != TypeRegex {
		return "", "", false
	}
	return v.str, v.flags, true
}

// Float widens any numeric payload to float64.
func (v Value) Float() (float64, bool) {
	switch v.t {
	case TypeInt:
		return float64(v.i), true
	case TypeDouble:
		return v.f, true
	}
	return 0, false
}

// Equal reports structural equality. Numeric values compare by numeric value
// rather than by subtype, so Int(5) equals Double(5).
func (v Value) Equal(o Value) bool {
	if v.t.Numeric() && o.t.Numeric() {
		vf, _ := v.Float()
		of, _ := o.Float()
		return vf == of
	}
	if v.t != o.t {
		return false
	}
	switch v.t {
	case TypeObject:
		return v.doc.Equal(o.doc)
	case TypeArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case TypeString:
		return v.str == o.str
	case TypeBool:
		return v.b == o.b
	case TypeNull:
		return true
	case TypeRegex:
		return v.str == o.str && v.flags == o.flags
	}
	return false
}

// Clone deep-copies the value.
func (v Value) Clone() Value {
	switch v.t {
	case TypeObject:
		return Value{t: TypeObject, doc: v.doc.Clone()}
	case TypeArray:
		arr := make([]Value, len(v.arr))
		for i := range v.arr {
			arr[i] = v.arr[i].Clone()
		}
		return Value{t: TypeArray, arr: arr}
	}
	return v
}

// Element is a single (name, value) pair of a Document.
type Element struct {
	Name  string
	Value Value
}

// Document is an ordered sequence of named values. Field order is preserved
// by the wire codecs and observed during matching; duplicate names are legal
// at this layer and resolved first-wins by Get.
type Document []Element

// Get returns the value of the first field with the given name.
func (d Document) Get(name string) (Value, bool) {
	for _, el := range d {
		if el.Name == name {
			return el.Value, true
		}
	}
	return Value{}, false
}

// Lookup resolves a dotted path against nested objects. An empty path
// resolves to the document itself.
func (d Document) Lookup(path string) (Value, bool) {
	if path == "" {
		return Object(d), true
	}
	cur := d
	for {
		head, rest, more := strings.Cut(path, ".")
		v, ok := cur.Get(head)
		if !ok {
			return Value{}, false
		}
		if !more {
			return v, true
		}
		sub, ok := v.AsDocument()
		if !ok {
			return Value{}, false
		}
		cur, path = sub, rest
	}
}

// Equal reports field-by-field equality, order included.
func (d Document) Equal(o Document) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i].Name != o[i].Name || !d[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}

// Clone deep-copies the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i := range d {
		out[i] = Element{Name: d[i].Name, Value: d[i].Value.Clone()}
	}
	return out
}
