// Package clientgen generates typed API client surfaces from OpenAPI
// documents.
//
// The core of the library is a pure resolution pass: a parsed document is
// turned into a language-agnostic model of type declarations and callable
// operations grouped in a namespace tree, which renderers then map to
// concrete source files. TypeScript is the built-in renderer.
//
// Quick start:
//
//	import "github.com/apiforge/clientgen"
//
//	err := clientgen.GenerateTypeScriptClient(
//		"https://petstore3.swagger.io/api/v3/openapi.json",
//		"./generated",
//		"petstore-client",
//		"PetStoreClient",
//	)
//
// To work with the intermediate model directly, see BuildModel and the
// generator package.
package clientgen

import (
	"github.com/apiforge/clientgen/pkg/generator"
	"github.com/apiforge/clientgen/pkg/model"
)

// GenerateTypeScriptClient generates a TypeScript client surface from an
// OpenAPI document.
//
// Parameters:
//   - spec: path to the document or an HTTP(S) URL
//   - outDir: output directory for the generated client
//   - packageName: package name of the generated client
//   - clientName: name of the generated client factory
func GenerateTypeScriptClient(spec, outDir, packageName, clientName string) error {
	return generator.GenerateTypeScriptClient(spec, outDir, packageName, clientName)
}

// BuildModel loads an OpenAPI document and assembles the intermediate model
// of type declarations and operations without rendering any files.
func BuildModel(spec string) (*model.Model, error) {
	return generator.BuildModel(spec)
}

// ValidateSpec loads and validates an OpenAPI document. Useful for checking
// a document before attempting generation.
func ValidateSpec(spec string) error {
	return generator.ValidateSpec(spec)
}
