package generator

import (
	"context"

	"github.com/youwol/tsscaffold/internal/template"
)

// Generator produces the generated tree of a package from its Template
// Description. What gets written is up to the implementation.
type Generator interface {
	Generate(ctx context.Context, tpl *template.Template) error
}

// Func adapts an ordinary function to the Generator interface.
type Func func(ctx context.Context, tpl *template.Template) error

// Generate calls f(ctx, tpl).
func (f Func) Generate(ctx context.Context, tpl *template.Template) error {
	return f(ctx, tpl)
}

// Result lists the files written by Engine.Render, relative to the package
// root.
type Result struct {
	Files  []string
	Seeded []string
}
