package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"mirror-generator/internal/analyze"
)

// Config holds configuration for code generation.
type Config struct {
	// FileSuffix is appended to the package name to form the output file
	// name, e.g. "geo" + "_mirror.go".
	FileSuffix string

	// RuntimeImport is the import path of the mirror runtime package.
	RuntimeImport string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		FileSuffix:    "_mirror.go",
		RuntimeImport: "mirror-generator/mirror",
	}
}

// Generator renders package models into generated source files.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator, filling unset config fields with the
// defaults.
func NewGenerator(config Config) *Generator {
	def := DefaultConfig()

	if config.FileSuffix == "" {
		config.FileSuffix = def.FileSuffix
	}

	if config.RuntimeImport == "" {
		config.RuntimeImport = def.RuntimeImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g. "geo_mirror.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one package model. It returns nil when the package has no
// annotated types.
func (g *Generator) Generate(pkg *analyze.PackageModel) (*GeneratedFile, error) {
	if len(pkg.Types) == 0 {
		return nil, nil
	}

	e := newEmitter(pkg, g.config)

	for _, tm := range pkg.Types {
		if err := e.emitType(tm); err != nil {
			return nil, fmt.Errorf("generating %s: %w", tm.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, e.fileData()); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", pkg.Path, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", pkg.Path, err)
	}

	return &GeneratedFile{
		Filename: pkg.Name + g.config.FileSuffix,
		Content:  formatted,
	}, nil
}

type fileData struct {
	PackageName string
	Imports     []string
	Decls       []string
}

var fileTemplate = template.Must(template.New("mirror_file").Parse(`// Code generated by mirror-gen. DO NOT EDIT.

package {{.PackageName}}
{{- if .Imports}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{- end}}
{{- range .Decls}}

{{.}}
{{- end}}
`))
