package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"mirror-generator/internal/analyze"
	"mirror-generator/internal/common"
	"mirror-generator/internal/gen"
)

// Runner drives one load-analyze-generate cycle over the configured
// packages.
type Runner struct {
	cfg    *Config
	logger *log.Logger
}

// NewRunner creates a Runner over the given configuration.
func NewRunner(cfg *Config, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// renderedFile is one generated file pinned to its package directory.
type renderedFile struct {
	dir     string
	name    string
	content []byte
}

func (f renderedFile) path() string {
	if f.dir == "" {
		return f.name
	}

	return filepath.Join(f.dir, f.name)
}

// Generate writes one generated file per annotated package.
func (r *Runner) Generate() error {
	files, err := r.render()
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := os.WriteFile(f.path(), f.content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path(), err)
		}

		r.logger.Info("wrote generated file", "path", f.path())
	}

	if common.IsEmpty(files) {
		r.logger.Warn("no annotated types found", "patterns", strings.Join(r.cfg.Patterns, " "))
	}

	return nil
}

// Check renders everything and verifies the committed output is current
// without writing anything.
func (r *Runner) Check() error {
	files, err := r.render()
	if err != nil {
		return err
	}

	var stale []string

	for _, f := range files {
		existing, err := os.ReadFile(f.path())
		if err != nil || !bytes.Equal(existing, f.content) {
			stale = append(stale, f.path())
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("generated output out of date: %s (rerun `mirror-gen generate`)",
			strings.Join(stale, ", "))
	}

	r.logger.Info("generated output is up to date", "files", len(files))

	return nil
}

func (r *Runner) render() ([]renderedFile, error) {
	pkgs, err := analyze.LoadPackages(r.cfg.Dir, r.cfg.Patterns...)
	if err != nil {
		return nil, err
	}

	analyzer := analyze.NewAnalyzer()
	models := make([]*analyze.PackageModel, 0, len(pkgs))

	for _, pkg := range pkgs {
		model := analyzer.AnalyzePackage(pkg)
		if len(model.Types) == 0 {
			r.logger.Debug("no annotated types", "package", model.Path)

			continue
		}

		r.logger.Debug("analyzed package", "package", model.Path, "types", len(model.Types))
		models = append(models, model)
	}

	diags := analyzer.Diagnostics()

	for _, w := range diags.Warnings {
		r.logger.Warn(w.Message, "type", w.TypeName, "pos", w.Pos.String())
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			r.logger.Error(e.Message, "code", e.Code, "type", e.TypeName, "pos", e.Pos.String())
		}

		return nil, fmt.Errorf("analysis failed with %d error(s)", len(diags.Errors))
	}

	generator := gen.NewGenerator(gen.Config{FileSuffix: r.cfg.FileSuffix})

	var out []renderedFile

	for _, model := range models {
		file, err := generator.Generate(model)
		if err != nil {
			return nil, err
		}

		if file == nil {
			continue
		}

		out = append(out, renderedFile{
			dir:     model.Dir,
			name:    file.Filename,
			content: file.Content,
		})
	}

	return out, nil
}
