package entx

import (
	"bytes"
	"slices"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Record is the string-keyed map produced by ToArray. Keys keep the order in
// which they were first set, and that order survives JSON and YAML encoding.
//
// Values are plain data: scalars, nil, nested *Record for one-relations and
// []*Record for many-relations.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// ToMap converts the record, and every nested record, into plain maps and
// slices. Key order is lost.
func (r *Record) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	out := make(map[string]any, len(r.keys))
	for _, key := range r.keys {
		out[key] = plain(r.values[key])
	}
	return out
}

func plain(value any) any {
	switch v := value.(type) {
	case *Record:
		return v.ToMap()
	case []*Record:
		out := make([]any, len(v))
		for i, record := range v {
			out[i] = record.ToMap()
		}
		return out
	default:
		return value
	}
}

// MarshalJSON encodes the record as a JSON object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping with keys in insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if r == nil {
		return node, nil
	}

	for _, key := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(r.values[key]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
