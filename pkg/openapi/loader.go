package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds a remote document fetch.
const DefaultTimeout = 30 * time.Second

// LoadOptions configures remote fetches. Header values support environment
// interpolation of the form ${NAME} or ${NAME:default}.
type LoadOptions struct {
	Headers map[string]string
	Timeout time.Duration
}

// LoadDocument loads an OpenAPI document from a local file path or an
// HTTP(S) URL. Swagger 2.0 documents are converted to the v3 object model.
func LoadDocument(input string) (*openapi3.T, error) {
	return LoadDocumentWithOptions(input, LoadOptions{})
}

// LoadDocumentWithOptions loads a document with explicit fetch options.
func LoadDocumentWithOptions(input string, opts LoadOptions) (*openapi3.T, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loadFromURL(u, opts)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	return LoadFromData(data)
}

// ValidateDocument loads and validates a document.
func ValidateDocument(input string) error {
	doc, err := LoadDocument(input)
	if err != nil {
		return err
	}
	return doc.Validate(openapi3.NewLoader().Context)
}

// loadFromURL fetches the document over HTTP. Redirects follow the default
// client policy; the timeout covers the whole exchange.
func loadFromURL(u *url.URL, opts LoadOptions) (*openapi3.T, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for name, value := range opts.Headers {
		req.Header.Set(name, InterpolateEnv(value))
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", u, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return LoadFromData(data)
}

// LoadFromData parses raw document bytes (JSON or YAML). A Swagger 2.0
// document is converted to v3 before it reaches the assembler.
func LoadFromData(data []byte) (*openapi3.T, error) {
	var probe struct {
		Swagger string `yaml:"swagger" json:"swagger"`
		OpenAPI string `yaml:"openapi" json:"openapi"`
	}
	_ = yaml.Unmarshal(data, &probe)

	if strings.HasPrefix(probe.Swagger, "2") {
		jsonData, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing swagger 2.0 document: %w", err)
		}
		var v2 openapi2.T
		if err := json.Unmarshal(jsonData, &v2); err != nil {
			return nil, fmt.Errorf("parsing swagger 2.0 document: %w", err)
		}
		return openapi2conv.ToV3(&v2)
	}

	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return loader.LoadFromData(data)
}

// yamlToJSON re-encodes YAML bytes as JSON. JSON input passes through since
// it is a subset of YAML.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// InterpolateEnv replaces ${NAME} and ${NAME:default} references with the
// environment value. An unset variable without a default becomes empty.
func InterpolateEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		groups := envPattern.FindStringSubmatch(m)
		if v, ok := os.LookupEnv(groups[1]); ok {
			return v
		}
		return groups[2]
	})
}
