package schema

// Kind discriminates the variants of a Node.
type Kind string

const (
	KindRef         Kind = "ref"
	KindPrimitive   Kind = "primitive"
	KindArray       Kind = "array"
	KindObject      Kind = "object"
	KindComposition Kind = "composition"
	KindEnum        Kind = "enum"
	KindConst       Kind = "const"
	KindTypeArray   Kind = "typeArray"
	KindUnknown     Kind = "unknown"
)

// CompositionKind names the composition operator of a composition node.
type CompositionKind string

const (
	AnyOf CompositionKind = "anyOf"
	OneOf CompositionKind = "oneOf"
	AllOf CompositionKind = "allOf"
)

// Discriminator is an explicit table from a literal tag value to the schema
// it selects.
type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
}

// Field is one property of an object node, in declaration-stable order.
type Field struct {
	Name   string
	Schema *Node
}

// Node is the tagged raw input unit of the type-description graph.
// Exactly the fields relevant to Kind are populated. Nullability and the
// documentation annotations are orthogonal to the variant.
type Node struct {
	Kind Kind

	// Ref: target name extracted from the JSON pointer
	Ref string

	// Primitive (also the declared base of an enum)
	Primitive string

	// TypeArray: the declared primitive type tags, "null" included
	Kinds []string

	// Array; nil when items is absent
	Items *Node

	// Object
	Fields   []Field
	Required []string
	// Additional is non-nil when additionalProperties is a schema, or a
	// KindUnknown node when it is the boolean true.
	Additional *Node

	// Composition
	Comp          CompositionKind
	Members       []*Node
	Discriminator *Discriminator

	// Enum / Const
	Enum  []any
	Const any

	// Annotations
	Description string
	Default     any
	Example     any
	Format      string
	Nullable    bool
	ReadOnly    bool
	WriteOnly   bool
	Min         *float64
	Max         *float64
	MinLength   *uint64
	MaxLength   *uint64
	Pattern     string
	MinItems    *uint64
	MaxItems    *uint64
}

// IsRequired reports whether the named property is in the required set of an
// object node.
func (n *Node) IsRequired(name string) bool {
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}
