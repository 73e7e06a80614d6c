package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/youwol/tsscaffold/internal/generator"
	"github.com/youwol/tsscaffold/internal/metadata"
	"github.com/youwol/tsscaffold/internal/template"
)

// Default file layout relative to the package root.
const (
	DefaultTemplateDir  = generator.DefaultTemplateDir
	DefaultMetadataFile = "package.json"
)

// Runner holds everything one scaffold run needs.
type Runner struct {
	Fs   afero.Fs
	Root string

	// TemplateDir and MetadataFile are relative to Root. Empty values
	// select DefaultTemplateDir and DefaultMetadataFile.
	TemplateDir  string
	MetadataFile string

	// Dependencies defaults to template.DefaultDependencies().
	Dependencies *template.DependencySet

	Generator generator.Generator

	// Out receives progress lines; nil discards them.
	Out io.Writer
}

// Report describes a successful run.
type Report struct {
	Template *template.Template

	// Copied lists destinations relative to Root, in copy order.
	Copied []string
}

// Run executes the scaffold:
//
//  1. parse <root>/package.json
//  2. assemble the Template Description with the fixed dependency set
//  3. call the generator
//  4. copy <template dir>/src/auto-generated.ts to src/auto-generated.ts
//  5. copy each of StaticFiles from <template dir>/ to the package root
//
// The first failure stops the run. It is a *ParseError, a *GenerationError
// or a *CopyError; copies made before it are kept.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	metaPath := filepath.Join(r.Root, orDefault(r.MetadataFile, DefaultMetadataFile))
	meta, err := metadata.Parse(r.Fs, metaPath)
	if err != nil {
		return nil, err
	}

	deps := template.DefaultDependencies()
	if r.Dependencies != nil {
		deps = *r.Dependencies
	}

	tpl := template.Assemble(r.Root, meta, deps)
	fmt.Fprintf(out, "Generating %s@%s\n", tpl.Name, tpl.Version)

	if err := r.Generator.Generate(ctx, tpl); err != nil {
		return nil, &GenerationError{Err: err}
	}

	report := &Report{Template: tpl}
	templateDir := orDefault(r.TemplateDir, DefaultTemplateDir)

	for _, rel := range copyList() {
		src := filepath.Join(r.Root, templateDir, filepath.FromSlash(rel))
		dst := filepath.Join(r.Root, filepath.FromSlash(rel))
		if err := copyFile(r.Fs, src, dst); err != nil {
			return report, &CopyError{Src: src, Dst: dst, Err: err}
		}
		report.Copied = append(report.Copied, rel)
		fmt.Fprintf(out, "  copied %s\n", rel)
	}

	return report, nil
}

// copyList returns the stub followed by the static files.
func copyList() []string {
	return append([]string{StubFile}, StaticFiles...)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
