package typescript

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/namer"
)

// exprToTS renders a type expression as TypeScript source text.
func exprToTS(e model.TypeExpr) string {
	switch e.Kind {
	case model.KindNamed:
		return "Schema." + e.Name
	case model.KindPrimitive:
		switch e.Primitive {
		case model.Integer, model.Number:
			return "number"
		case model.Null:
			return "null"
		default:
			return string(e.Primitive)
		}
	case model.KindLiteral:
		return literalToTS(e.Literal)
	case model.KindArray:
		inner := exprToTS(*e.Elem)
		if strings.Contains(inner, " | ") || strings.Contains(inner, " & ") {
			inner = "(" + inner + ")"
		}
		return "Array<" + inner + ">"
	case model.KindObject:
		if len(e.Fields) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			opt := ""
			if f.Optional {
				opt = "?"
			}
			parts = append(parts, f.Name+opt+": "+exprToTS(f.Type))
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	case model.KindMap:
		return "Record<string, " + exprToTS(*e.Value) + ">"
	case model.KindUnion:
		parts := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			parts = append(parts, exprToTS(m))
		}
		return strings.Join(parts, " | ")
	case model.KindIntersection:
		parts := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			p := exprToTS(m)
			if strings.Contains(p, " | ") {
				p = "(" + p + ")"
			}
			parts = append(parts, p)
		}
		return strings.Join(parts, " & ")
	case model.KindNullable:
		inner := exprToTS(*e.Inner)
		if strings.Contains(inner, " | ") || strings.Contains(inner, " & ") {
			inner = "(" + inner + ")"
		}
		return inner + " | null"
	case model.KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

func literalToTS(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return string(data)
}

// children returns a node's child namespaces in sorted name order.
func children(n *model.NamespaceNode) []*model.NamespaceNode {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*model.NamespaceNode, 0, len(names))
	for _, name := range names {
		out = append(out, n.Children[name])
	}
	return out
}

// paramVar sanitizes a raw parameter name into a TypeScript variable name.
func paramVar(nm *namer.Normalizer, raw string) string {
	v := nm.MethodIdentifier(raw)
	if v == "" {
		return "param"
	}
	return v
}

// buildPathTemplate converts an URL template into a TS template literal:
// /users/{id} -> `/users/${encodeURIComponent(id)}`.
func buildPathTemplate(nm *namer.Normalizer, op model.OperationSpec) string {
	path := op.Path
	var b strings.Builder
	b.WriteString("`")
	for i := 0; i < len(path); i++ {
		if path[i] == '{' {
			j := i + 1
			for j < len(path) && path[j] != '}' {
				j++
			}
			if j < len(path) {
				b.WriteString("${encodeURIComponent(")
				b.WriteString(paramVar(nm, path[i+1:j]))
				b.WriteString(")}")
				i = j
				continue
			}
		}
		b.WriteByte(path[i])
	}
	b.WriteString("`")
	return b.String()
}

// buildSignature builds the TS parameter list: path parameters positionally,
// then the body, then optional query and header objects.
func buildSignature(nm *namer.Normalizer, op model.OperationSpec) string {
	var parts []string
	for _, p := range op.Params {
		if p.In == model.InPath {
			parts = append(parts, fmt.Sprintf("%s: %s", paramVar(nm, p.Name), exprToTS(p.Type)))
		}
	}
	if op.RequestBody != nil {
		opt := "?"
		if op.RequestBody.Required {
			opt = ""
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", op.RequestBody.Name, opt, exprToTS(op.RequestBody.Type)))
	}
	if obj := paramObject(nm, op, model.InQuery); obj != "" {
		parts = append(parts, "query?: "+obj)
	}
	if obj := paramObject(nm, op, model.InHeader); obj != "" {
		parts = append(parts, "headers?: "+obj)
	}
	return strings.Join(parts, ", ")
}

func paramObject(nm *namer.Normalizer, op model.OperationSpec, in model.ParamLocation) string {
	var parts []string
	for _, p := range op.Params {
		if p.In != in {
			continue
		}
		opt := "?"
		if p.Required {
			opt = ""
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", nm.PropertyIdentifier(p.Name), opt, exprToTS(p.Type)))
	}
	if len(parts) == 0 {
		return ""
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// buildRequestInit lists the init entries the generated call passes along.
func buildRequestInit(nm *namer.Normalizer, op model.OperationSpec) string {
	var parts []string
	hasQuery, hasHeader := false, false
	for _, p := range op.Params {
		switch p.In {
		case model.InQuery:
			hasQuery = true
		case model.InHeader:
			hasHeader = true
		}
	}
	if hasQuery {
		parts = append(parts, "query")
	}
	if hasHeader {
		parts = append(parts, "headers")
	}
	if op.RequestBody != nil {
		parts = append(parts, op.RequestBody.Name)
	}
	return strings.Join(parts, ", ")
}

// docComment renders a description record as a TSDoc block with the given
// indentation.
func docComment(doc *model.DocRecord, indent string) string {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(indent + "/**\n")
	if doc.Summary != "" {
		b.WriteString(indent + " * " + doc.Summary + "\n")
	}
	for _, c := range doc.Constraints {
		b.WriteString(indent + " * " + c + "\n")
	}
	b.WriteString(indent + " */")
	return b.String()
}
