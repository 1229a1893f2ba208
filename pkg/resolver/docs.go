package resolver

import (
	"fmt"
	"strings"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/schema"
)

// Describe derives a documentation record for a schema node. The summary is
// the node's declared description, or "<contextName> property" when a
// context name is supplied. Constraint lines follow in a fixed order; the
// ordering is part of the contract because downstream renderers depend on it
// for reproducible output. Returns nil when nothing applies.
func Describe(n *schema.Node, contextName string) *model.DocRecord {
	if n == nil {
		return nil
	}
	summary := n.Description
	if summary == "" && contextName != "" {
		summary = contextName + " property"
	}

	var cs []string
	add := func(label string, value any) {
		cs = append(cs, fmt.Sprintf("%s: %v", label, value))
	}

	if n.Description == "" {
		if tag := typeTag(n); tag != "" {
			add("Type", tag)
		}
	}
	if n.Default != nil {
		add("Default", n.Default)
	}
	if n.Example != nil {
		add("Example", n.Example)
	}
	if len(n.Enum) > 0 {
		vals := make([]string, 0, len(n.Enum))
		for _, v := range n.Enum {
			vals = append(vals, fmt.Sprint(v))
		}
		add("Allowed values", strings.Join(vals, ", "))
	}
	if n.Kind == schema.KindConst {
		add("Constant", n.Const)
	}
	if n.Format != "" {
		add("Format", n.Format)
	}
	if n.Min != nil {
		add("Minimum", *n.Min)
	}
	if n.Max != nil {
		add("Maximum", *n.Max)
	}
	if n.MinLength != nil {
		add("Min length", *n.MinLength)
	}
	if n.MaxLength != nil {
		add("Max length", *n.MaxLength)
	}
	if n.Pattern != "" {
		add("Pattern", n.Pattern)
	}
	if n.MinItems != nil {
		add("Min items", *n.MinItems)
	}
	if n.MaxItems != nil {
		add("Max items", *n.MaxItems)
	}
	if n.Nullable {
		add("Nullable", true)
	}
	if n.ReadOnly {
		add("Read-only", true)
	}
	if n.WriteOnly {
		add("Write-only", true)
	}

	if summary == "" && len(cs) == 0 {
		return nil
	}
	return &model.DocRecord{Summary: summary, Constraints: cs}
}

// typeTag names the declared shape of a node for the leading constraint
// line. Compositions and references carry no tag of their own.
func typeTag(n *schema.Node) string {
	switch n.Kind {
	case schema.KindPrimitive:
		return n.Primitive
	case schema.KindEnum:
		if n.Primitive != "" {
			return n.Primitive
		}
		return ""
	case schema.KindArray:
		return "array"
	case schema.KindObject:
		return "object"
	case schema.KindTypeArray:
		return strings.Join(n.Kinds, " | ")
	}
	return ""
}
