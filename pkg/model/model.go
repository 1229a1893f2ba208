package model

// ExprKind discriminates the variants of a TypeExpr.
type ExprKind string

const (
	KindNamed        ExprKind = "named"
	KindPrimitive    ExprKind = "primitive"
	KindLiteral      ExprKind = "literal"
	KindArray        ExprKind = "array"
	KindObject       ExprKind = "object"
	KindMap          ExprKind = "map"
	KindUnion        ExprKind = "union"
	KindIntersection ExprKind = "intersection"
	KindNullable     ExprKind = "nullable"
	KindVoid         ExprKind = "void"
	KindUnknown      ExprKind = "unknown"
)

// PrimitiveKind names the scalar types carried by a primitive expression.
type PrimitiveKind string

const (
	String  PrimitiveKind = "string"
	Number  PrimitiveKind = "number"
	Integer PrimitiveKind = "integer"
	Boolean PrimitiveKind = "boolean"
	Null    PrimitiveKind = "null"
)

// TypeExpr is a resolved type expression. Exactly the fields relevant to
// Kind are populated; everything else is zero. Cyclic schema graphs are
// represented through KindNamed back-references, never by inlining.
type TypeExpr struct {
	Kind ExprKind

	// Named
	Name string

	// Primitive
	Primitive PrimitiveKind

	// Literal
	Literal any

	// Array
	Elem *TypeExpr

	// Object
	Fields []Field

	// Map (string-keyed dictionary)
	Value *TypeExpr

	// Union / Intersection
	Members []TypeExpr

	// Nullable
	Inner *TypeExpr
}

// Field is one property of an inline object expression. Name is already
// normalized: either a bare identifier or a quoted string literal.
type Field struct {
	Name     string
	Type     TypeExpr
	Optional bool
}

func Named(name string) TypeExpr         { return TypeExpr{Kind: KindNamed, Name: name} }
func Prim(k PrimitiveKind) TypeExpr      { return TypeExpr{Kind: KindPrimitive, Primitive: k} }
func Lit(v any) TypeExpr                 { return TypeExpr{Kind: KindLiteral, Literal: v} }
func ArrayOf(elem TypeExpr) TypeExpr     { return TypeExpr{Kind: KindArray, Elem: &elem} }
func Object(fields []Field) TypeExpr     { return TypeExpr{Kind: KindObject, Fields: fields} }
func MapOf(value TypeExpr) TypeExpr      { return TypeExpr{Kind: KindMap, Value: &value} }
func UnionOf(ms ...TypeExpr) TypeExpr    { return TypeExpr{Kind: KindUnion, Members: ms} }
func IntersectOf(ms ...TypeExpr) TypeExpr {
	return TypeExpr{Kind: KindIntersection, Members: ms}
}
func NullableOf(inner TypeExpr) TypeExpr { return TypeExpr{Kind: KindNullable, Inner: &inner} }
func Void() TypeExpr                     { return TypeExpr{Kind: KindVoid} }
func Unknown() TypeExpr                  { return TypeExpr{Kind: KindUnknown} }

// DocRecord is a structured description derived from a schema node:
// free-form prose plus "label: value" constraint lines in a fixed order.
type DocRecord struct {
	Summary     string
	Constraints []string
}

// TypeDecl is one named type declaration. Extends carries inheritance
// recorded from an allOf made solely of references.
type TypeDecl struct {
	Name    string
	Type    TypeExpr
	Doc     *DocRecord
	Extends []string
}

// ParamLocation classifies where an operation parameter is carried.
type ParamLocation string

const (
	InPath   ParamLocation = "path"
	InQuery  ParamLocation = "query"
	InHeader ParamLocation = "header"
)

// ParamSpec is one declared operation parameter.
type ParamSpec struct {
	Name     string
	In       ParamLocation
	Required bool
	Type     TypeExpr
	Doc      *DocRecord
}

// RequestBody is the synthetic body parameter of an operation. Name is
// always "data".
type RequestBody struct {
	Name     string
	Type     TypeExpr
	Required bool
}

// OperationSpec is one callable operation of the client surface.
type OperationSpec struct {
	Method      string
	Path        string
	MethodName  string
	Namespace   []string
	Params      []ParamSpec
	RequestBody *RequestBody
	Response    TypeExpr
	Doc         *DocRecord
}

// NamespaceNode groups operations into a tree derived from operation
// identifiers. The root node has an empty name.
type NamespaceNode struct {
	Name       string
	Children   map[string]*NamespaceNode
	Operations []OperationSpec
}

// NewNamespace returns an empty namespace node.
func NewNamespace(name string) *NamespaceNode {
	return &NamespaceNode{Name: name, Children: map[string]*NamespaceNode{}}
}

// Child returns the named child, creating it when absent.
func (n *NamespaceNode) Child(name string) *NamespaceNode {
	if c, ok := n.Children[name]; ok {
		return c
	}
	c := NewNamespace(name)
	n.Children[name] = c
	return c
}

// Model is the complete intermediate model of one generation run. It is
// built once by the assembler and never mutated afterwards.
type Model struct {
	Types []TypeDecl
	Root  *NamespaceNode
}
