package proposalint

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Preamble is the typed key/value mapping decoded from a preamble block.
// It is created fresh per validation call and discarded afterwards.
type Preamble map[string]any

// str returns the named field as a string. Callers only use it for fields
// whose spec declares KindString, which ParsePreamble has already enforced.
func (p Preamble) str(name string) (string, bool) {
	v, ok := p[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ParsePreamble decodes raw block text into a Preamble. It fails with a
// *DecodeError when the text is not a YAML mapping, and with a
// *TypeMismatchError when a recognized field decodes to the wrong primitive
// type. The decode step alone is never trusted to guarantee shape; every
// known field is narrowed explicitly against its spec.
//
// Decoding goes through yaml.Node rather than straight into any so that
// scalars keep their source text: an unquoted 2024-01-15 resolves to
// !!timestamp, and the date rules need the text as written, not a
// reformatted time value.
func ParsePreamble(raw string) (Preamble, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, NewDecodeError(err)
	}
	if len(doc.Content) == 0 {
		return nil, NewDecodeError(fmt.Errorf("expected a mapping, got null"))
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, NewDecodeError(fmt.Errorf("expected a mapping, got %s", nodeTypeName(root)))
	}

	m := make(Preamble, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		m[root.Content[i].Value] = nodeValue(root.Content[i+1])
	}
	for _, name := range fieldOrder {
		val, present := m[name]
		if !present {
			continue
		}
		spec := fieldSpecs[name]
		if !kindMatches(spec.Kind, val) {
			return nil, NewTypeMismatchError(name, valueTypeName(val), spec.Kind.String())
		}
	}
	return m, nil
}

// nodeValue converts one YAML value node to a Go value.
func nodeValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, nodeValue(c))
		}
		return out
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return out
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	}
	switch n.Tag {
	case "!!null":
		return nil
	case "!!bool":
		return n.Value == "true" || n.Value == "True" || n.Value == "TRUE"
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return int(i)
		}
		return n.Value
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
		return n.Value
	default:
		// !!str and !!timestamp both keep the source text.
		return n.Value
	}
}

func kindMatches(k FieldKind, v any) bool {
	switch k {
	case KindNumber:
		switch v.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case KindString:
		_, ok := v.(string)
		return ok
	}
	return false
}

// valueTypeName names a decoded value's type for diagnostics.
func valueTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int, int64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func nodeTypeName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return valueTypeName(nodeValue(n))
	default:
		return "unknown"
	}
}
