package schema

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// RefName extracts the target schema name from a JSON pointer or returns the
// input unchanged when it is already a bare name.
func RefName(ref string) string {
	if strings.HasPrefix(ref, "#/components/schemas/") {
		return strings.TrimPrefix(ref, "#/components/schemas/")
	}
	if strings.HasPrefix(ref, "#/definitions/") {
		return strings.TrimPrefix(ref, "#/definitions/")
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// FromRef converts one parsed schema reference into a tagged Node. The
// conversion is shallow over references: a $ref becomes a KindRef node and is
// never expanded in place, which is what keeps cyclic graphs finite.
func FromRef(sr *openapi3.SchemaRef) *Node {
	if sr == nil {
		return &Node{Kind: KindUnknown}
	}
	if sr.Ref != "" {
		name := RefName(sr.Ref)
		if name == "" {
			return &Node{Kind: KindUnknown}
		}
		return &Node{Kind: KindRef, Ref: name}
	}
	if sr.Value == nil {
		return &Node{Kind: KindUnknown}
	}
	s := sr.Value

	n := &Node{
		Description: s.Description,
		Default:     s.Default,
		Example:     s.Example,
		Format:      s.Format,
		Nullable:    s.Nullable,
		ReadOnly:    s.ReadOnly,
		WriteOnly:   s.WriteOnly,
		Min:         s.Min,
		Max:         s.Max,
		MaxLength:   s.MaxLength,
		Pattern:     s.Pattern,
		MaxItems:    s.MaxItems,
	}
	if s.MinLength > 0 {
		v := s.MinLength
		n.MinLength = &v
	}
	if s.MinItems > 0 {
		v := s.MinItems
		n.MinItems = &v
	}

	if s.Discriminator != nil {
		n.Discriminator = &Discriminator{
			PropertyName: s.Discriminator.PropertyName,
			Mapping:      s.Discriminator.Mapping,
		}
	}

	switch {
	case len(s.OneOf) > 0:
		n.Kind = KindComposition
		n.Comp = OneOf
		n.Members = convertMembers(s.OneOf)
	case len(s.AnyOf) > 0:
		n.Kind = KindComposition
		n.Comp = AnyOf
		n.Members = convertMembers(s.AnyOf)
	case len(s.AllOf) > 0:
		n.Kind = KindComposition
		n.Comp = AllOf
		n.Members = convertMembers(s.AllOf)
	}
	if n.Kind == KindComposition {
		return n
	}

	// The 3.1 const keyword is not a first-class field of the parsed object
	// graph; it arrives through extensions.
	if c, ok := s.Extensions["const"]; ok {
		n.Kind = KindConst
		n.Const = c
		return n
	}

	// Multi-typed node, e.g. type: ["string", "null"].
	if s.Type != nil && len(s.Type.Slice()) > 1 {
		n.Kind = KindTypeArray
		n.Kinds = append(n.Kinds, s.Type.Slice()...)
		return n
	}

	if len(s.Enum) > 0 {
		n.Kind = KindEnum
		n.Enum = s.Enum
		n.Primitive = scalarName(s.Type)
		return n
	}

	switch {
	case s.Type.Is(openapi3.TypeString),
		s.Type.Is(openapi3.TypeInteger),
		s.Type.Is(openapi3.TypeNumber),
		s.Type.Is(openapi3.TypeBoolean),
		s.Type.Is("null"):
		n.Kind = KindPrimitive
		n.Primitive = scalarName(s.Type)
	case s.Type.Is(openapi3.TypeArray):
		n.Kind = KindArray
		if s.Items != nil {
			n.Items = FromRef(s.Items)
		}
	case s.Type.Is(openapi3.TypeObject), len(s.Properties) > 0,
		s.AdditionalProperties.Schema != nil, s.AdditionalProperties.Has != nil:
		n.Kind = KindObject
		n.Fields = convertProperties(s)
		n.Required = append(n.Required, s.Required...)
		if s.AdditionalProperties.Schema != nil {
			n.Additional = FromRef(s.AdditionalProperties.Schema)
		} else if s.AdditionalProperties.Has != nil && *s.AdditionalProperties.Has {
			n.Additional = &Node{Kind: KindUnknown}
		}
	default:
		n.Kind = KindUnknown
	}
	return n
}

func convertMembers(refs openapi3.SchemaRefs) []*Node {
	out := make([]*Node, 0, len(refs))
	for _, sub := range refs {
		out = append(out, FromRef(sub))
	}
	return out
}

// convertProperties returns object fields in sorted name order. The parsed
// object graph stores properties in a map, so the original declaration order
// is unrecoverable; sorting keeps output stable across runs.
func convertProperties(s *openapi3.Schema) []Field {
	if len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Schema: FromRef(s.Properties[name])})
	}
	return fields
}

func scalarName(t *openapi3.Types) string {
	if t == nil || len(t.Slice()) == 0 {
		return ""
	}
	return t.Slice()[0]
}
