package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a parsed configuration document. It keeps the raw YAML node
// tree instead of decoding into Go maps so that mapping keys retain their
// document order when sections are re-emitted.
type Document struct {
	root *yaml.Node
}

// LoadDocument reads and parses the configuration file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}

	return doc, nil
}

// ParseDocument parses raw YAML into a Document. An empty input yields a
// document with no groups rather than an error.
func ParseDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &Document{root: &root}, nil
}

// Group returns the raw value node for a top-level key and whether the key
// is present at all. Presence matters to the writer: some fields are emitted
// even when their value is null or false.
func (d *Document) Group(name string) (*yaml.Node, bool) {
	n := Field(d.top(), name)
	return n, n != nil
}

// Section returns the mapping node for a top-level group. Absent groups and
// groups that are not mappings yield nil; callers treat nil as an empty
// section.
func (d *Document) Section(name string) *yaml.Node {
	n, _ := d.Group(name)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	return n
}

// top unwraps the document node down to the root mapping, or nil when the
// document is empty or not a mapping at the top level.
func (d *Document) top() *yaml.Node {
	if d == nil || d.root == nil {
		return nil
	}
	n := d.root
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	return n
}

// Field looks up key in a mapping node and returns its value node with any
// alias resolved. Nil-safe: a nil or non-mapping node has no fields.
func Field(m *yaml.Node, key string) *yaml.Node {
	m = resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

// StringField returns the scalar string value of a field, or "" when the
// field is absent, null, or not a scalar.
func StringField(m *yaml.Node, key string) string {
	n := Field(m, key)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

// Truthy reports whether a node holds a value worth emitting: null, false,
// zero, the empty string, and empty sequences or mappings are all falsy.
func Truthy(n *yaml.Node) bool {
	n = resolve(n)
	if n == nil {
		return false
	}
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return n.Value != ""
		}
		switch t := v.(type) {
		case nil:
			return false
		case bool:
			return t
		case int:
			return t != 0
		case int64:
			return t != 0
		case uint64:
			return t != 0
		case float64:
			return t != 0
		case string:
			return t != ""
		default:
			return true
		}
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) > 0
	}
	return false
}

// resolve follows alias nodes to the anchored value.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
