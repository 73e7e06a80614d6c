package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/spf13/afero"
	"github.com/youwol/tsscaffold/internal/template"
)

// DefaultTemplateDir is the directory, relative to the package root, that
// receives the regenerated files.
const DefaultTemplateDir = ".template"

// Option configures an Engine.
type Option func(*Engine)

// WithTemplateDir overrides the directory receiving the regenerated files.
func WithTemplateDir(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.templateDir = dir
		}
	}
}

// WithLicenseHolder sets the copyright holder written into LICENSE. The
// package author is used when empty.
func WithLicenseHolder(holder string) Option {
	return func(e *Engine) {
		e.licenseHolder = holder
	}
}

// WithClock overrides the clock used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithProgress makes Generate report every written file to w.
func WithProgress(w io.Writer) Option {
	return func(e *Engine) {
		e.progress = w
	}
}

// Engine renders the embedded template set onto an afero filesystem.
type Engine struct {
	fs            afero.Fs
	templateDir   string
	licenseHolder string
	now           func() time.Time
	progress      io.Writer

	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

var _ Generator = (*Engine)(nil)

// New returns an Engine writing to fsys.
func New(fsys afero.Fs, options ...Option) *Engine {
	sub, _ := fs.Sub(templatesFS, templatesRoot)
	e := &Engine{
		fs:          fsys,
		templateDir: DefaultTemplateDir,
		now:         time.Now,
		progress:    io.Discard,
		set:         pongo2.NewSet("tsscaffold", pongo2.NewFSLoader(sub)),
		templates:   make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	registerDefaultFilters()
	return e
}

// TemplateDir returns the directory receiving the regenerated files.
func (e *Engine) TemplateDir() string { return e.templateDir }

// Generate renders tpl and discards the file list.
func (e *Engine) Generate(ctx context.Context, tpl *template.Template) error {
	result, err := e.Render(ctx, tpl)
	if err != nil {
		return err
	}
	for _, f := range result.Files {
		fmt.Fprintf(e.progress, "  generated %s\n", f)
	}
	for _, f := range result.Seeded {
		fmt.Fprintf(e.progress, "  seeded    %s\n", f)
	}
	return nil
}

// Render writes every manifest file under <root>/<template dir>/ and seeds
// missing user-owned files under <root>/. Existing seeds are left alone.
func (e *Engine) Render(ctx context.Context, tpl *template.Template) (*Result, error) {
	if tpl.Path == "" {
		return nil, fmt.Errorf("template has no package path")
	}

	m, err := loadManifest()
	if err != nil {
		return nil, err
	}

	data, err := buildContext(tpl, e.now().Year(), e.licenseHolder)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for _, spec := range m.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		rel := filepath.Join(e.templateDir, filepath.FromSlash(spec.Output))
		if err := e.renderTo(spec.Template, filepath.Join(tpl.Path, rel), data); err != nil {
			return result, err
		}
		result.Files = append(result.Files, filepath.ToSlash(rel))
	}

	for _, spec := range m.Seeds {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !enabled(spec.When, data) {
			continue
		}
		dst := filepath.Join(tpl.Path, filepath.FromSlash(spec.Output))
		exists, err := afero.Exists(e.fs, dst)
		if err != nil {
			return result, fmt.Errorf("checking %s: %w", dst, err)
		}
		if exists {
			continue
		}
		if err := e.renderTo(spec.Template, dst, data); err != nil {
			return result, err
		}
		result.Seeded = append(result.Seeded, spec.Output)
	}

	return result, nil
}

// renderTo executes one embedded template and writes the output to dst,
// creating parent directories.
func (e *Engine) renderTo(name, dst string, data pongo2.Context) error {
	tmpl, err := e.template(name)
	if err != nil {
		return err
	}

	out, err := tmpl.ExecuteBytes(data)
	if err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	if err := e.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	if err := afero.WriteFile(e.fs, dst, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// template returns the compiled template for name. Sources are wrapped in
// an autoescape-off block: the outputs are code and config, not HTML.
func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	src, err := templatesFS.ReadFile(path.Join(templatesRoot, name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	wrapped := append([]byte("{% autoescape off %}"), src...)
	wrapped = append(wrapped, []byte("{% endautoescape %}")...)

	tmpl, err := e.set.FromBytes(wrapped)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// enabled reports whether a manifest entry guarded by the boolean context
// key cond should be written.
func enabled(cond string, data pongo2.Context) bool {
	if cond == "" {
		return true
	}
	v, _ := data[cond].(bool)
	return v
}
