package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// MixinsKey is the reserved key holding the ordered list of mixed-in source names.
const MixinsKey = "mixins"

// Style is an ordered mapping of style keys to values.
//
// Values are opaque except for nested mappings (*Style), which act as
// modifier groups during resolution. Overwriting an existing key keeps its
// original position, so merge order never reshuffles keys.
type Style struct {
	keys   []string
	values map[string]any
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	return &Style{values: make(map[string]any)}
}

// FromMap builds a style from a plain map. Keys are inserted in sorted order
// since Go maps carry none; nested maps become nested styles.
func FromMap(m map[string]any) *Style {
	s := NewStyle()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, normalize(m[k]))
	}
	return s
}

// normalize converts plain nested maps into *Style so the resolver only has
// one mapping type to deal with.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case Style:
		return &t
	default:
		return v
	}
}

// asStyle reports whether v is a mapping value.
func asStyle(v any) (*Style, bool) {
	switch t := v.(type) {
	case *Style:
		return t, t != nil
	case map[string]any:
		return FromMap(t), true
	default:
		return nil, false
	}
}

// Set stores value under key and returns s for chaining.
func (s *Style) Set(key string, value any) *Style {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = normalize(value)
	return s
}

// Get returns the value stored under key.
func (s *Style) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Style) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key if present.
func (s *Style) Delete(key string) {
	if s == nil {
		return
	}
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (s *Style) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Len returns the number of keys.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// All iterates key/value pairs in insertion order.
func (s *Style) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. Nested styles are shared.
func (s *Style) Clone() *Style {
	if s == nil {
		return NewStyle()
	}
	return &Style{keys: slices.Clone(s.keys), values: maps.Clone(s.values)}
}

// Merge copies every key of other onto s, overwriting existing keys.
// It is shallow: nested styles are replaced, not merged.
func (s *Style) Merge(other *Style) *Style {
	for k, v := range other.All() {
		s.Set(k, v)
	}
	return s
}

// Map exports the style as plain nested maps.
func (s *Style) Map() map[string]any {
	out := make(map[string]any, s.Len())
	for k, v := range s.All() {
		if nested, ok := v.(*Style); ok {
			out[k] = nested.Map()
			continue
		}
		out[k] = v
	}
	return out
}

// Equal reports whether both styles hold the same keys in the same order
// with equal values. Non-style values are compared with ==, falling back to
// their fmt representation for uncomparable values.
func (s *Style) Equal(other *Style) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, k := range s.Keys() {
		if other.keys[i] != k {
			return false
		}
		a, b := s.values[k], other.values[k]
		as, aok := a.(*Style)
		bs, bok := b.(*Style)
		switch {
		case aok || bok:
			if !aok || !bok || !as.Equal(bs) {
				return false
			}
		case !valuesEqual(a, b):
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = fmt.Sprint(a) == fmt.Sprint(b)
		}
	}()
	return a == b
}

// String renders the style as compact JSON.
func (s *Style) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<style: %v>", err)
	}
	return string(b)
}

// MarshalJSON encodes the style as a JSON object in key order.
func (s *Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order at every level.
func (s *Style) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("style: expected JSON object, got %v", tok)
	}
	decoded, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

func decodeJSONObject(dec *json.Decoder) (*Style, error) {
	s := NewStyle()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("style: expected string key, got %v", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		s.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			var list []any
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("style: unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

// MarshalYAML encodes the style as a YAML mapping in key order.
func (s *Style) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range s.All() {
		var valNode yaml.Node
		if err := valNode.Encode(v); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&valNode,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order at every level.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := StyleFromNode(node)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// StyleFromNode converts a YAML mapping node into a style.
func StyleFromNode(node *yaml.Node) (*Style, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style: expected mapping at line %d, got %s", node.Line, kindName(node.Kind))
	}
	s := NewStyle()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		v, err := yamlValue(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		s.Set(keyNode.Value, v)
	}
	return s, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		return StyleFromNode(node)
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
