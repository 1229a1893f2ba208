package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of one generation run.
type Config struct {
	// Spec is a local path or an http(s) URL to the OpenAPI document.
	Spec string `yaml:"spec"`
	Name string `yaml:"name"`
	// Headers are sent when fetching a remote spec. Values support
	// ${NAME} / ${NAME:default} environment interpolation.
	Headers map[string]string `yaml:"headers"`
	// TimeoutSeconds bounds the fetch; zero means the default.
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
	Clients        []Client `yaml:"clients"`
}

// Client configures a single generated client surface.
type Client struct {
	Type        string `yaml:"type"`
	OutDir      string `yaml:"outDir"`
	PackageName string `yaml:"packageName"`
	Name        string `yaml:"name"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	for i := range cfg.Clients {
		c := &cfg.Clients[i]
		if c.Type == "" || c.OutDir == "" || c.PackageName == "" || c.Name == "" {
			return nil, fmt.Errorf("clients[%d] missing required fields (type, outDir, packageName, name)", i)
		}
		if !filepath.IsAbs(c.OutDir) {
			abs, _ := filepath.Abs(c.OutDir)
			c.OutDir = abs
		}
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	return &cfg, nil
}
