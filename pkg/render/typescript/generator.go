package typescript

import (
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/apiforge/clientgen/pkg/config"
	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/namer"
)

//go:embed templates/*
var templatesFS embed.FS

// Renderer emits a TypeScript client surface from the intermediate model.
type Renderer struct {
	namer *namer.Normalizer
}

// New creates a TypeScript renderer.
func New() *Renderer {
	return &Renderer{namer: namer.New()}
}

// Type implements generator.Renderer.
func (r *Renderer) Type() string { return "typescript" }

// Render implements generator.Renderer. It writes schema.ts, client.ts,
// index.ts and package.json under the client's output directory.
func (r *Renderer) Render(client config.Client, m *model.Model) error {
	srcDir := filepath.Join(client.OutDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return err
	}

	funcMap := template.FuncMap{
		"tsType":       exprToTS,
		"children":     children,
		"signature":    func(op model.OperationSpec) string { return buildSignature(r.namer, op) },
		"pathTemplate": func(op model.OperationSpec) string { return buildPathTemplate(r.namer, op) },
		"requestInit":  func(op model.OperationSpec) string { return buildRequestInit(r.namer, op) },
		"docComment":   docComment,
	}

	files := map[string]string{
		"schema.ts.gotmpl":    filepath.Join(srcDir, "schema.ts"),
		"client.ts.gotmpl":    filepath.Join(srcDir, "client.ts"),
		"index.ts.gotmpl":     filepath.Join(srcDir, "index.ts"),
		"package.json.gotmpl": filepath.Join(client.OutDir, "package.json"),
	}
	data := map[string]any{"Client": client, "Model": m}
	for name, outPath := range files {
		if err := renderFile(name, outPath, funcMap, data); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(tmplName, outPath string, fm template.FuncMap, data any) error {
	t, err := template.New(tmplName).Funcs(sprig.TxtFuncMap()).Funcs(fm).ParseFS(templatesFS, "templates/"+tmplName)
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}
