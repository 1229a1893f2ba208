package generator

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/namer"
	"github.com/apiforge/clientgen/pkg/resolver"
	"github.com/apiforge/clientgen/pkg/schema"
)

// Assemble builds the complete intermediate model from one parsed document:
// every named component schema becomes a type declaration, then the
// operation tree is synthesized. References to undeclared schemas are left
// in the model as-is; no cross-validation happens here.
func Assemble(doc *openapi3.T) *model.Model {
	res := resolver.New(namer.New())
	return &model.Model{
		Types: buildTypeDecls(doc, res),
		Root:  SynthesizeOperations(doc, res),
	}
}

// buildTypeDecls resolves every named schema in sorted name order. Two
// schemas normalizing to the same identifier are not deduplicated: the last
// one wins.
func buildTypeDecls(doc *openapi3.T, res *resolver.Resolver) []model.TypeDecl {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]model.TypeDecl, 0, len(names))
	index := map[string]int{}
	for _, name := range names {
		decl := res.ResolveDecl(name, schema.FromRef(doc.Components.Schemas[name]))
		if i, ok := index[decl.Name]; ok {
			decls[i] = decl
			continue
		}
		index[decl.Name] = len(decls)
		decls = append(decls, decl)
	}
	return decls
}
