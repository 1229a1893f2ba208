package generator

import (
	"fmt"
	"os"
	"time"

	"github.com/apiforge/clientgen/pkg/config"
	"github.com/apiforge/clientgen/pkg/model"
	"github.com/apiforge/clientgen/pkg/openapi"
)

// Renderer turns the intermediate model into source files for one target
// language.
type Renderer interface {
	// Render writes the client surface for the given configuration.
	Render(client config.Client, m *model.Model) error
	// Type returns the type identifier for this renderer (e.g. "typescript").
	Type() string
}

// Registry manages available renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: map[string]Renderer{}}
}

// Register adds a renderer to the registry.
func (r *Registry) Register(ren Renderer) {
	r.renderers[ren.Type()] = ren
}

// Get retrieves a renderer by type.
func (r *Registry) Get(typ string) (Renderer, bool) {
	ren, ok := r.renderers[typ]
	return ren, ok
}

// Types returns all registered renderer types.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.renderers))
	for t := range r.renderers {
		out = append(out, t)
	}
	return out
}

// Service drives one generation run: load document, assemble the model,
// render each configured client.
type Service struct {
	registry *Registry
}

// NewService creates a Service with the given registry.
func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// Registry returns the renderer registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Run generates all clients from a configuration (or only the named one when
// onlyClient is non-empty).
func (s *Service) Run(cfg *config.Config, onlyClient string) error {
	doc, err := openapi.LoadDocumentWithOptions(cfg.Spec, openapi.LoadOptions{
		Headers: cfg.Headers,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	m := Assemble(doc)

	for _, client := range cfg.Clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}
		ren, ok := s.registry.Get(client.Type)
		if !ok {
			return fmt.Errorf("unsupported client type: %s", client.Type)
		}
		if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory for client %s: %w", client.Name, err)
		}
		if err := ren.Render(client, m); err != nil {
			return err
		}
	}
	return nil
}
