// Package hclenc renders configuration values as Terraform tfvars text.
// It is write-only: the emitted syntax is plain HCL attribute assignments,
// but nothing here parses HCL back.
package hclenc

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value renders a YAML node as a tfvars literal. indent is the caller's
// current indent column; it only affects nested mapping blocks, sequences
// stay on one line regardless of length.
//
// Nulls render as the empty string literal rather than HCL null so that
// downstream variables typed as string keep working.
func Value(n *yaml.Node, indent int) string {
	if n == nil {
		return `""`
	}
	switch n.Kind {
	case yaml.AliasNode:
		return Value(n.Alias, indent)
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return "[]"
		}
		items := make([]string, len(n.Content))
		for i, item := range n.Content {
			items[i] = Value(item, indent+2)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		pad := strings.Repeat(" ", indent+2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			b.WriteString(pad)
			b.WriteString(n.Content[i].Value)
			b.WriteString(" = ")
			b.WriteString(Value(n.Content[i+1], indent+2))
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString("}")
		return b.String()
	default:
		return quote(n.Value)
	}
}

// scalar renders a scalar node according to its resolved type.
func scalar(n *yaml.Node) string {
	var v any
	if err := n.Decode(&v); err != nil {
		return quote(n.Value)
	}
	switch t := v.(type) {
	case nil:
		return `""`
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return quote(t)
	default:
		// timestamps and other resolved scalar types
		return quote(fmt.Sprint(v))
	}
}

// quote wraps s in double quotes, escaping backslashes and double quotes.
// No other characters need escaping in the emitted grammar.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
