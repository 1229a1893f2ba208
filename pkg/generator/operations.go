package generator

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/resolver"
	"github.com/apiforge/clientgen/pkg/schema"
)

// responseStatuses are scanned in this priority order; the first one present
// on an operation determines the response type.
var responseStatuses = []string{"200", "201", "204"}

// contentPreference orders media types when a body declares several.
var contentPreference = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// SynthesizeOperations walks every path/verb pair of the document and groups
// the resulting operations into a namespace tree derived from operation
// identifiers.
func SynthesizeOperations(doc *openapi3.T, res *resolver.Resolver) *model.NamespaceNode {
	root := model.NewNamespace("")
	if doc.Paths == nil {
		return root
	}
	pathMap := doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := pathMap[path]
		operations := []*openapi3.Operation{
			item.Get, item.Post, item.Put, item.Patch,
			item.Delete, item.Options, item.Head, item.Trace,
		}
		methods := []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE"}
		for i, op := range operations {
			if op == nil {
				continue
			}
			insert(root, buildOperation(op, methods[i], path, res))
		}
	}
	return root
}

func buildOperation(op *openapi3.Operation, method, path string, res *resolver.Resolver) model.OperationSpec {
	opID := op.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + "_" + path
	}
	segments, name := res.Namer().NamespacePath(opID)

	return model.OperationSpec{
		Method:      method,
		Path:        path,
		MethodName:  name,
		Namespace:   segments,
		Params:      collectParams(op, res),
		RequestBody: extractRequestBody(op, res),
		Response:    extractResponse(op, res),
		Doc:         describeOperation(op),
	}
}

// collectParams classifies declared parameters by location, preserving
// declaration order. Path parameters are always required regardless of the
// declared flag.
func collectParams(op *openapi3.Operation, res *resolver.Resolver) []model.ParamSpec {
	var out []model.ParamSpec
	for _, pr := range op.Parameters {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		var in model.ParamLocation
		switch p.In {
		case openapi3.ParameterInPath:
			in = model.InPath
		case openapi3.ParameterInQuery:
			in = model.InQuery
		case openapi3.ParameterInHeader:
			in = model.InHeader
		default:
			continue
		}
		node := schema.FromRef(p.Schema)
		doc := resolver.Describe(node, p.Name)
		if p.Description != "" {
			if doc == nil {
				doc = &model.DocRecord{}
			}
			doc.Summary = p.Description
		}
		out = append(out, model.ParamSpec{
			Name:     p.Name,
			In:       in,
			Required: p.Required || in == model.InPath,
			Type:     res.Resolve(node),
			Doc:      doc,
		})
	}
	return out
}

// extractRequestBody turns a declared body into the synthetic "data"
// parameter. The requirement flag mirrors the declaration and defaults to
// not required.
func extractRequestBody(op *openapi3.Operation, res *resolver.Resolver) *model.RequestBody {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	rb := op.RequestBody.Value
	media := pickContent(rb.Content)
	if media == nil {
		return nil
	}
	return &model.RequestBody{
		Name:     "data",
		Type:     res.Resolve(schema.FromRef(media.Schema)),
		Required: rb.Required,
	}
}

// extractResponse scans 200, 201, 204 in that order. The first status
// present decides: no content means the void marker, otherwise its schema
// resolves. When none of the three is present the response is unknown.
func extractResponse(op *openapi3.Operation, res *resolver.Resolver) model.TypeExpr {
	if op.Responses == nil {
		return model.Unknown()
	}
	m := op.Responses.Map()
	for _, code := range responseStatuses {
		rr, ok := m[code]
		if !ok || rr == nil || rr.Value == nil {
			continue
		}
		media := pickContent(rr.Value.Content)
		if media == nil {
			return model.Void()
		}
		return res.Resolve(schema.FromRef(media.Schema))
	}
	return model.Unknown()
}

// pickContent selects a media type by preference order, falling back to the
// lexicographically first entry so the choice is stable.
func pickContent(content openapi3.Content) *openapi3.MediaType {
	if len(content) == 0 {
		return nil
	}
	for _, ct := range contentPreference {
		if media, ok := content[ct]; ok {
			return media
		}
	}
	keys := make([]string, 0, len(content))
	for ct := range content {
		keys = append(keys, ct)
	}
	sort.Strings(keys)
	return content[keys[0]]
}

func describeOperation(op *openapi3.Operation) *model.DocRecord {
	summary := op.Summary
	if summary == "" {
		summary = op.Description
	}
	if summary == "" {
		return nil
	}
	return &model.DocRecord{Summary: summary}
}

// insert places an operation at its namespace path, creating intermediate
// nodes as needed. Two operations landing on the same leaf name are not
// deduplicated: the last write wins.
func insert(root *model.NamespaceNode, op model.OperationSpec) {
	node := root
	for _, seg := range op.Namespace {
		node = node.Child(seg)
	}
	for i := range node.Operations {
		if node.Operations[i].MethodName == op.MethodName {
			node.Operations[i] = op
			return
		}
	}
	node.Operations = append(node.Operations, op)
}
