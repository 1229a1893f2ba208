package generator

import (
	"time"

	"github.com/apiforge/clientgen/pkg/config"
	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/openapi"
	"github.com/apiforge/clientgen/pkg/render/typescript"
)

// DefaultService returns a Service with the built-in renderers registered.
func DefaultService() *Service {
	registry := NewRegistry()
	registry.Register(typescript.New())
	return NewService(registry)
}

// BuildModel loads a document from a path or URL and assembles the
// intermediate model without rendering anything.
func BuildModel(spec string) (*model.Model, error) {
	doc, err := openapi.LoadDocument(spec)
	if err != nil {
		return nil, err
	}
	return Assemble(doc), nil
}

// BuildModelWithHeaders is BuildModel with fetch headers and timeout for
// remote documents.
func BuildModelWithHeaders(spec string, headers map[string]string, timeout time.Duration) (*model.Model, error) {
	doc, err := openapi.LoadDocumentWithOptions(spec, openapi.LoadOptions{Headers: headers, Timeout: timeout})
	if err != nil {
		return nil, err
	}
	return Assemble(doc), nil
}

// GenerateTypeScriptClient generates a TypeScript client surface with
// minimal configuration.
func GenerateTypeScriptClient(spec, outDir, packageName, clientName string) error {
	cfg := &config.Config{
		Spec: spec,
		Clients: []config.Client{{
			Type:        "typescript",
			OutDir:      outDir,
			PackageName: packageName,
			Name:        clientName,
		}},
	}
	return DefaultService().Run(cfg, "")
}

// ValidateSpec loads and validates an OpenAPI document.
func ValidateSpec(spec string) error {
	return openapi.ValidateDocument(spec)
}
