package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// JSON has no regex literal, so regex values travel as a two-field object in
// the style of extended JSON.
const (
	jsonRegexKey   = "$regex"
	jsonOptionsKey = "$options"
)

// DecodeJSON decodes a JSON object into a Document, preserving field order.
// Numbers without fraction or exponent that fit in int64 decode as Int, all
// others as Double.
func DecodeJSON(data []byte) (Document, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, errors.New("document: top-level JSON value must be an object")
	}
	doc, err := decodeJSONObject(dec)
	if err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("document: trailing data after JSON document")
	}
	return doc, nil
}

func decodeJSONObject(dec *j.Decoder) (Document, error) {
	doc := Document{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return doc, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		doc = append(doc, Element{Name: key, Value: v})
	}
}

func decodeJSONArray(dec *j.Decoder) ([]Value, error) {
	arr := []Value{}
	for {
		if !dec.More() {
			// Consume the closing bracket.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func decodeJSONValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *j.Decoder, tok j.Token) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			doc, err := decodeJSONObject(dec)
			if err != nil {
				return Value{}, err
			}
			if re, ok := regexFromDocument(doc); ok {
				return re, nil
			}
			return Object(doc), nil
		case '[':
			arr, err := decodeJSONArray(dec)
			if err != nil {
				return Value{}, err
			}
			return Array(arr), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case j.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Int(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("bad number %q: %w", s, err)
		}
		return Double(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// regexFromDocument recognizes the {$regex, $options} wire form.
func regexFromDocument(doc Document) (Value, bool) {
	if len(doc) == 0 || len(doc) > 2 {
		return Value{}, false
	}
	src, ok := doc[0].Value.AsString()
	if !ok || doc[0].Name != jsonRegexKey {
		return Value{}, false
	}
	opts := ""
	if len(doc) == 2 {
		opts, ok = doc[1].Value.AsString()
		if !ok || doc[1].Name != jsonOptionsKey {
			return Value{}, false
		}
	}
	return Regex(src, opts), true
}

// EncodeJSON emits the document as canonical JSON in field order.
func EncodeJSON(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSONObject(&buf, doc); err != nil {
		return nil, fmt.Errorf("document: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeJSONObject(buf *bytes.Buffer, doc Document) error {
	buf.WriteByte('{')
	for i, el := range doc {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(buf, el.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeJSONValue(buf, el.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeJSONValue(buf *bytes.Buffer, v Value) error {
	switch v.Type() {
	case TypeObject:
		d, _ := v.AsDocument()
		return encodeJSONObject(buf, d)
	case TypeArray:
		arr, _ := v.AsArray()
		buf.WriteByte('[')
		for i, el := range arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONValue(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case TypeString:
		s, _ := v.AsString()
		return encodeJSONString(buf, s)
	case TypeInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	case TypeDouble:
		f, _ := v.AsDouble()
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		return nil
	case TypeBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
		return nil
	case TypeNull:
		buf.WriteString("null")
		return nil
	case TypeRegex:
		src, opts, _ := v.AsRegex()
		re := Document{
			{Name: jsonRegexKey, Value: String(src)},
			{Name: jsonOptionsKey, Value: String(opts)},
		}
		return encodeJSONObject(buf, re)
	}
	return fmt.Errorf("unencodable value type %s", v.Type())
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	b, err := j.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
