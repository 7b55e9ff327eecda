package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a single YAML mapping into a Document, preserving the
// declared key order. Schemas authored in YAML go through the same Document
// shape as JSON ones.
func DecodeYAML(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Document{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document: top-level YAML value must be a mapping, got %v", node.Kind)
	}
	v, err := yamlNodeValue(node)
	if err != nil {
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	doc, _ := v.AsDocument()
	return doc, nil
}

func yamlNodeValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlNodeValue(node.Alias)
	case yaml.MappingNode:
		doc := make(Document, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			v, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			doc = append(doc, Element{Name: key.Value, Value: v})
		}
		if re, ok := regexFromDocument(doc); ok {
			return re, nil
		}
		return Object(doc), nil
	case yaml.SequenceNode:
		arr := make([]Value, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlNodeValue(item)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, v)
		}
		return Array(arr), nil
	case yaml.ScalarNode:
		return yamlScalarValue(node)
	}
	return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %v", node.Line, node.Kind)
}

func yamlScalarValue(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!str":
		return String(node.Value), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(node.Value, 64)
			if ferr != nil {
				return Value{}, fmt.Errorf("line %d: bad integer %q: %w", node.Line, node.Value, err)
			}
			return Double(f), nil
		}
		return Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Value{}, fmt.Errorf("line %d: bad float %q: %w", node.Line, node.Value, err)
		}
		return Double(f), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("line %d: bad bool %q: %w", node.Line, node.Value, err)
		}
		return Bool(b), nil
	case "!!null":
		return Null(), nil
	}
	// Unresolved or custom tags degrade to strings.
	return String(node.Value), nil
}
