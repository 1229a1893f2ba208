package resolver

import (
	"sort"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/namer"
	"github.com/apiforge/clientgen/pkg/schema"
)

// Resolver maps schema nodes to type expressions. All naming goes through
// one Normalizer so that identifiers stay consistent across a run.
type Resolver struct {
	namer *namer.Normalizer
}

// New returns a Resolver using the given Normalizer.
func New(n *namer.Normalizer) *Resolver {
	return &Resolver{namer: n}
}

// Namer exposes the Normalizer backing this resolver.
func (r *Resolver) Namer() *namer.Normalizer {
	return r.namer
}

// Resolve maps one schema node to a type expression.
func (r *Resolver) Resolve(n *schema.Node) model.TypeExpr {
	expr, _ := r.resolve(n)
	return expr
}

// ResolveDecl resolves a top-level named schema into a declaration. An allOf
// made solely of references is additionally recorded as inheritance.
func (r *Resolver) ResolveDecl(name string, n *schema.Node) model.TypeDecl {
	expr, extends := r.resolve(n)
	return model.TypeDecl{
		Name:    r.namer.TypeIdentifier(name),
		Type:    expr,
		Doc:     Describe(n, ""),
		Extends: extends,
	}
}

func (r *Resolver) resolve(n *schema.Node) (model.TypeExpr, []string) {
	if n == nil {
		return model.Unknown(), nil
	}
	switch n.Kind {
	case schema.KindRef:
		// Never expanded in place; dangling targets propagate as-is.
		return model.Named(r.namer.TypeIdentifier(n.Ref)), nil

	case schema.KindComposition:
		return r.resolveComposition(n)

	case schema.KindTypeArray:
		members := make([]model.TypeExpr, 0, len(n.Kinds))
		for _, k := range n.Kinds {
			members = append(members, model.Prim(primitiveKind(k)))
		}
		return model.UnionOf(members...), nil

	case schema.KindConst:
		return model.Lit(n.Const), nil

	default:
		expr := r.resolveBase(n)
		if n.Nullable {
			expr = model.NullableOf(expr)
		}
		return expr, nil
	}
}

func (r *Resolver) resolveComposition(n *schema.Node) (model.TypeExpr, []string) {
	switch n.Comp {
	case schema.OneOf:
		if n.Discriminator != nil && len(n.Discriminator.Mapping) > 0 {
			return r.resolveDiscriminated(n), nil
		}
		return model.UnionOf(r.resolveMembers(n.Members)...), nil

	case schema.AllOf:
		exprs := r.resolveMembers(n.Members)
		inter := model.IntersectOf(exprs...)
		extends := make([]string, 0, len(n.Members))
		for _, m := range n.Members {
			if m == nil || m.Kind != schema.KindRef {
				return inter, nil
			}
			extends = append(extends, r.namer.TypeIdentifier(m.Ref))
		}
		return inter, extends

	default: // anyOf
		return model.UnionOf(r.resolveMembers(n.Members)...), nil
	}
}

// resolveDiscriminated builds a tagged union from a discriminator mapping:
// each mapped entry becomes Named(target) intersected with an object pinning
// the discriminator property to the mapping key.
func (r *Resolver) resolveDiscriminated(n *schema.Node) model.TypeExpr {
	keys := make([]string, 0, len(n.Discriminator.Mapping))
	for k := range n.Discriminator.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prop := r.namer.PropertyIdentifier(n.Discriminator.PropertyName)
	members := make([]model.TypeExpr, 0, len(keys))
	for _, key := range keys {
		target := schema.RefName(n.Discriminator.Mapping[key])
		tag := model.Object([]model.Field{{Name: prop, Type: model.Lit(key)}})
		members = append(members, model.IntersectOf(
			model.Named(r.namer.TypeIdentifier(target)),
			tag,
		))
	}
	return model.UnionOf(members...)
}

func (r *Resolver) resolveMembers(members []*schema.Node) []model.TypeExpr {
	out := make([]model.TypeExpr, 0, len(members))
	for _, m := range members {
		out = append(out, r.Resolve(m))
	}
	return out
}

func (r *Resolver) resolveBase(n *schema.Node) model.TypeExpr {
	switch n.Kind {
	case schema.KindEnum:
		// An empty enum list degrades to the declared base type.
		if len(n.Enum) == 0 {
			if n.Primitive != "" {
				return model.Prim(primitiveKind(n.Primitive))
			}
			return model.Unknown()
		}
		members := make([]model.TypeExpr, 0, len(n.Enum))
		for _, v := range n.Enum {
			members = append(members, model.Lit(v))
		}
		return model.UnionOf(members...)

	case schema.KindPrimitive:
		return model.Prim(primitiveKind(n.Primitive))

	case schema.KindArray:
		if n.Items == nil {
			return model.ArrayOf(model.Unknown())
		}
		return model.ArrayOf(r.Resolve(n.Items))

	case schema.KindObject:
		if len(n.Fields) > 0 {
			fields := make([]model.Field, 0, len(n.Fields))
			for _, f := range n.Fields {
				fields = append(fields, model.Field{
					Name:     r.namer.PropertyIdentifier(f.Name),
					Type:     r.Resolve(f.Schema),
					Optional: !n.IsRequired(f.Name),
				})
			}
			return model.Object(fields)
		}
		if n.Additional != nil {
			return model.MapOf(r.Resolve(n.Additional))
		}
		return model.MapOf(model.Unknown())

	default:
		return model.Unknown()
	}
}

func primitiveKind(tag string) model.PrimitiveKind {
	switch tag {
	case "string":
		return model.String
	case "number":
		return model.Number
	case "integer":
		return model.Integer
	case "boolean":
		return model.Boolean
	case "null":
		return model.Null
	}
	return model.PrimitiveKind(tag)
}
