package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apiforge/clientgen/pkg/config"
	"github.com/apiforge/clientgen/pkg/generator"
)

func main() {
	root := &cobra.Command{
		Use:   "clientgen",
		Short: "Generate typed API clients from OpenAPI documents",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var singleClient string
	var input string
	var typ string
	var outDir string
	var packageName string
	var name string
	var headers []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client surfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, input, typ, outDir, packageName, name, headers)
			if err != nil {
				return err
			}
			return generator.DefaultService().Run(cfg, singleClient)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to clientgen.yaml config")
	cmd.Flags().StringVar(&singleClient, "client", "", "Generate only the named client from config")
	// Fallback single-client flags
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI document (file path or URL)")
	cmd.Flags().StringVar(&typ, "type", "typescript", "Client type")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&packageName, "package-name", "", "Package name")
	cmd.Flags().StringVar(&name, "client-name", "", "Client name")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Request header for remote specs, formatted as 'Name: value' (supports ${ENV} interpolation)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generator.ValidateSpec(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI document (file path or URL)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func resolveConfig(configPath, input, typ, outDir, packageName, name string, headers []string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if input == "" || outDir == "" || packageName == "" || name == "" {
		return nil, errors.New("either --config or all of --input, --out, --package-name, --client-name must be provided")
	}
	headerMap, err := parseHeaders(headers)
	if err != nil {
		return nil, err
	}
	return &config.Config{
		Spec:    input,
		Headers: headerMap,
		Clients: []config.Client{{
			Type:        typ,
			OutDir:      outDir,
			PackageName: packageName,
			Name:        name,
		}},
	}, nil
}

func parseHeaders(headers []string) (map[string]string, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		name, value, found := strings.Cut(h, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --header %q, expected 'Name: value'", h)
		}
		out[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return out, nil
}
