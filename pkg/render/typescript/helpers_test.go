package typescript

import (
	"testing"

	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/namer"
)

func TestExprToTS(t *testing.T) {
	tests := []struct {
		name string
		in   model.TypeExpr
		want string
	}{
		{"named", model.Named("User"), "Schema.User"},
		{"string", model.Prim(model.String), "string"},
		{"integer", model.Prim(model.Integer), "number"},
		{"number", model.Prim(model.Number), "number"},
		{"boolean", model.Prim(model.Boolean), "boolean"},
		{"null", model.Prim(model.Null), "null"},
		{"string literal", model.Lit("dog"), `"dog"`},
		{"numeric literal", model.Lit(42.0), "42"},
		{"array", model.ArrayOf(model.Prim(model.String)), "Array<string>"},
		{
			"array of union",
			model.ArrayOf(model.UnionOf(model.Prim(model.String), model.Prim(model.Null))),
			"Array<(string | null)>",
		},
		{
			"object",
			model.Object([]model.Field{
				{Name: "id", Type: model.Prim(model.String)},
				{Name: "name", Type: model.Prim(model.String), Optional: true},
			}),
			"{ id: string; name?: string }",
		},
		{"empty object", model.Object(nil), "{}"},
		{"map", model.MapOf(model.Prim(model.Number)), "Record<string, number>"},
		{
			"union",
			model.UnionOf(model.Lit("a"), model.Lit("b")),
			`"a" | "b"`,
		},
		{
			"intersection",
			model.IntersectOf(model.Named("User"), model.Named("Audit")),
			"Schema.User & Schema.Audit",
		},
		{
			"intersection parenthesizes unions",
			model.IntersectOf(
				model.Named("Base"),
				model.UnionOf(model.Lit("a"), model.Lit("b")),
			),
			`Schema.Base & ("a" | "b")`,
		},
		{"nullable", model.NullableOf(model.Prim(model.String)), "string | null"},
		{
			"nullable union",
			model.NullableOf(model.UnionOf(model.Lit("a"), model.Lit("b"))),
			`("a" | "b") | null`,
		},
		{"void", model.Void(), "void"},
		{"unknown", model.Unknown(), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprToTS(tt.in); got != tt.want {
				t.Errorf("exprToTS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPathTemplate(t *testing.T) {
	nm := namer.New()
	tests := []struct {
		path string
		want string
	}{
		{"/users", "`/users`"},
		{"/users/{id}", "`/users/${encodeURIComponent(id)}`"},
		{"/orgs/{org-id}/users/{user_id}", "`/orgs/${encodeURIComponent(orgId)}/users/${encodeURIComponent(userId)}`"},
	}
	for _, tt := range tests {
		op := model.OperationSpec{Path: tt.path}
		if got := buildPathTemplate(nm, op); got != tt.want {
			t.Errorf("buildPathTemplate(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBuildSignature(t *testing.T) {
	nm := namer.New()
	op := model.OperationSpec{
		Path: "/users/{id}",
		Params: []model.ParamSpec{
			{Name: "id", In: model.InPath, Required: true, Type: model.Prim(model.String)},
			{Name: "limit", In: model.InQuery, Type: model.Prim(model.Integer)},
			{Name: "X-Trace", In: model.InHeader, Type: model.Prim(model.String)},
		},
		RequestBody: &model.RequestBody{
			Name:     "data",
			Type:     model.Named("UserPatch"),
			Required: true,
		},
	}
	want := "id: string, data: Schema.UserPatch, query?: { limit?: number }, headers?: { 'X-Trace'?: string }"
	if got := buildSignature(nm, op); got != want {
		t.Errorf("buildSignature() = %q, want %q", got, want)
	}
}

func TestBuildSignatureOptionalBody(t *testing.T) {
	nm := namer.New()
	op := model.OperationSpec{
		Path:        "/users",
		RequestBody: &model.RequestBody{Name: "data", Type: model.Named("User")},
	}
	want := "data?: Schema.User"
	if got := buildSignature(nm, op); got != want {
		t.Errorf("buildSignature() = %q, want %q", got, want)
	}
}

func TestBuildRequestInit(t *testing.T) {
	nm := namer.New()
	op := model.OperationSpec{
		Params: []model.ParamSpec{
			{Name: "q", In: model.InQuery, Type: model.Prim(model.String)},
			{Name: "X-Trace", In: model.InHeader, Type: model.Prim(model.String)},
		},
		RequestBody: &model.RequestBody{Name: "data", Type: model.Named("User")},
	}
	if got, want := buildRequestInit(nm, op), "query, headers, data"; got != want {
		t.Errorf("buildRequestInit() = %q, want %q", got, want)
	}
	if got := buildRequestInit(nm, model.OperationSpec{}); got != "" {
		t.Errorf("buildRequestInit(empty) = %q, want empty", got)
	}
}

func TestDocComment(t *testing.T) {
	if got := docComment(nil, "  "); got != "" {
		t.Errorf("docComment(nil) = %q, want empty", got)
	}
	doc := &model.DocRecord{
		Summary:     "User identifier.",
		Constraints: []string{"Type: string", "Format: uuid"},
	}
	want := "  /**\n   * User identifier.\n   * Type: string\n   * Format: uuid\n   */"
	if got := docComment(doc, "  "); got != want {
		t.Errorf("docComment() = %q, want %q", got, want)
	}
}
