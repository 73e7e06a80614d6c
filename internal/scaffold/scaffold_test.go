package scaffold

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/youwol/tsscaffold/internal/generator"
	"github.com/youwol/tsscaffold/internal/template"
)

const (
	root        = "/pkg"
	packageJSON = `{
    "name": "@youwol/geophysics",
    "version": "0.1.21-wip",
    "description": "geophysics package for YouWol",
    "author": "fmaerten@youwol.com"
}
`
)

// ─── Fakes ─────────────────────────────────────────────────────────

// recordingGenerator captures the Template Description and writes a fake
// template tree, leaving out the files listed in skip.
type recordingGenerator struct {
	fs    afero.Fs
	skip  map[string]bool
	calls int
	got   *template.Template
}

func (g *recordingGenerator) Generate(_ context.Context, tpl *template.Template) error {
	g.calls++
	g.got = tpl
	for _, rel := range copyList() {
		if g.skip[rel] {
			continue
		}
		path := filepath.Join(tpl.Path, DefaultTemplateDir, rel)
		if err := afero.WriteFile(g.fs, path, []byte("generated "+rel+"\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}

// ─── Helpers ───────────────────────────────────────────────────────

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, filepath.Join(root, "package.json"), []byte(packageJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func assertExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); !ok {
		t.Errorf("%s should exist", path)
	}
}

func assertNotExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); ok {
		t.Errorf("%s should not exist", path)
	}
}

func assertSameContent(t *testing.T, fsys afero.Fs, a, b string) {
	t.Helper()
	da, err := afero.ReadFile(fsys, a)
	if err != nil {
		t.Fatalf("reading %s: %v", a, err)
	}
	db, err := afero.ReadFile(fsys, b)
	if err != nil {
		t.Fatalf("reading %s: %v", b, err)
	}
	if !bytes.Equal(da, db) {
		t.Errorf("%s and %s differ", a, b)
	}
}

// ─── Tests ─────────────────────────────────────────────────────────

func TestRunPassesMetadataThrough(t *testing.T) {
	fsys := newFs(t)
	gen := &recordingGenerator{fs: fsys}
	r := &Runner{Fs: fsys, Root: root, Generator: gen}

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	tpl := gen.got
	if tpl != report.Template {
		t.Error("report does not carry the generated Template Description")
	}
	if tpl.Name != "@youwol/geophysics" || tpl.Version != "0.1.21-wip" ||
		tpl.ShortDescription != "geophysics package for YouWol" || tpl.Author != "fmaerten@youwol.com" {
		t.Errorf("metadata not passed through: %+v", tpl)
	}
	if tpl.Path != root {
		t.Errorf("Path = %q, want %q", tpl.Path, root)
	}
	if tpl.Type != template.PackageTypeLibrary {
		t.Errorf("Type = %q, want library", tpl.Type)
	}
}

func TestRunUsesFixedExternals(t *testing.T) {
	fsys := newFs(t)
	gen := &recordingGenerator{fs: fsys}
	r := &Runner{Fs: fsys, Root: root, Generator: gen}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := template.Dependencies{
		{Name: "@youwol/dataframe", Version: "^0.1.0"},
		{Name: "@youwol/math", Version: "^0.1.0"},
		{Name: "@youwol/io", Version: "^0.1.0"},
	}
	if diff := cmp.Diff(want, gen.got.Dependencies.RunTime.Externals); diff != "" {
		t.Errorf("externals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Names(), gen.got.Bundles.MainModule.LoadDependencies); diff != "" {
		t.Errorf("load list mismatch (-want +got):\n%s", diff)
	}
	if !gen.got.UserGuide {
		t.Error("UserGuide should be requested")
	}
}

func TestRunCopiesEveryFileVerbatim(t *testing.T) {
	fsys := newFs(t)
	r := &Runner{Fs: fsys, Root: root, Generator: generator.New(fsys)}

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if diff := cmp.Diff(copyList(), report.Copied); diff != "" {
		t.Errorf("copied mismatch (-want +got):\n%s", diff)
	}
	if len(report.Copied) != 10 {
		t.Errorf("copied %d files, want 10", len(report.Copied))
	}
	for _, rel := range copyList() {
		assertSameContent(t, fsys,
			filepath.Join(root, DefaultTemplateDir, rel),
			filepath.Join(root, rel))
	}
}

func TestRunOverwritesExistingFiles(t *testing.T) {
	fsys := newFs(t)
	stale := filepath.Join(root, "README.md")
	if err := afero.WriteFile(fsys, stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &Runner{Fs: fsys, Root: root, Generator: &recordingGenerator{fs: fsys}}
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, _ := afero.ReadFile(fsys, stale)
	if string(data) != "generated README.md\n" {
		t.Errorf("README.md = %q, want overwritten content", data)
	}
}

func TestRunMissingMetadataWritesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	gen := &recordingGenerator{fs: fsys}
	r := &Runner{Fs: fsys, Root: root, Generator: gen}

	report, err := r.Run(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
	for _, rel := range copyList() {
		assertNotExists(t, fsys, filepath.Join(root, rel))
	}
}

func TestRunMalformedMetadata(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, filepath.Join(root, "package.json"), []byte(`{"name":`), 0644); err != nil {
		t.Fatal(err)
	}
	r := &Runner{Fs: fsys, Root: root, Generator: &recordingGenerator{fs: fsys}}

	_, err := r.Run(context.Background())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestRunGeneratorFailureStopsBeforeCopies(t *testing.T) {
	fsys := newFs(t)
	boom := errors.New("boom")
	gen := generator.Func(func(context.Context, *template.Template) error { return boom })
	r := &Runner{Fs: fsys, Root: root, Generator: gen}

	_, err := r.Run(context.Background())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %T: %v", err, err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected cause in chain, got %v", err)
	}
	assertNotExists(t, fsys, filepath.Join(root, StubFile))
	assertNotExists(t, fsys, filepath.Join(root, "README.md"))
}

func TestRunCopyFailureIsNotTransactional(t *testing.T) {
	fsys := newFs(t)
	third := StaticFiles[2]
	gen := &recordingGenerator{fs: fsys, skip: map[string]bool{third: true}}
	r := &Runner{Fs: fsys, Root: root, Generator: gen}

	report, err := r.Run(context.Background())

	var cerr *CopyError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CopyError, got %T: %v", err, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if cerr.Src != filepath.Join(root, DefaultTemplateDir, third) {
		t.Errorf("Src = %q", cerr.Src)
	}
	if cerr.Dst != filepath.Join(root, third) {
		t.Errorf("Dst = %q", cerr.Dst)
	}

	assertExists(t, fsys, filepath.Join(root, StubFile))
	for _, rel := range StaticFiles[:2] {
		assertExists(t, fsys, filepath.Join(root, rel))
	}
	// package.json is pre-existing in the fixture, so it is not a useful
	// signal here; every other later file must be absent.
	for _, rel := range StaticFiles[2:] {
		if rel == "package.json" {
			continue
		}
		assertNotExists(t, fsys, filepath.Join(root, rel))
	}
	data, _ := afero.ReadFile(fsys, filepath.Join(root, "package.json"))
	if string(data) != packageJSON {
		t.Error("package.json should be untouched after the failed copy")
	}

	want := append([]string{StubFile}, StaticFiles[:2]...)
	if diff := cmp.Diff(want, report.Copied); diff != "" {
		t.Errorf("copied mismatch (-want +got):\n%s", diff)
	}
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	fsys := newFs(t)
	r := &Runner{Fs: fsys, Root: root, Generator: generator.New(fsys)}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	first := make(map[string][]byte)
	for _, rel := range copyList() {
		data, err := afero.ReadFile(fsys, filepath.Join(root, rel))
		if err != nil {
			t.Fatal(err)
		}
		first[rel] = data
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	for _, rel := range copyList() {
		data, err := afero.ReadFile(fsys, filepath.Join(root, rel))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first[rel], data) {
			t.Errorf("%s changed between runs", rel)
		}
	}
}

func TestRunCustomLayout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, filepath.Join(root, "meta.json"), []byte(packageJSON), 0644); err != nil {
		t.Fatal(err)
	}
	deps := template.DependencySet{
		RunTime: template.RunTimeDeps{
			Externals: template.Dependencies{{Name: "rxjs", Version: "^7.5.6"}},
		},
	}
	r := &Runner{
		Fs:           fsys,
		Root:         root,
		TemplateDir:  ".scaffold",
		MetadataFile: "meta.json",
		Dependencies: &deps,
		Generator:    generator.New(fsys, generator.WithTemplateDir(".scaffold")),
	}

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"rxjs"}, report.Template.Bundles.MainModule.LoadDependencies); diff != "" {
		t.Errorf("load list mismatch (-want +got):\n%s", diff)
	}
	assertSameContent(t, fsys,
		filepath.Join(root, ".scaffold", "package.json"),
		filepath.Join(root, "package.json"))
}

func TestRunReportsProgress(t *testing.T) {
	fsys := newFs(t)
	var out bytes.Buffer
	r := &Runner{Fs: fsys, Root: root, Generator: &recordingGenerator{fs: fsys}, Out: &out}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for _, want := range []string{"Generating @youwol/geophysics@0.1.21-wip", "copied src/auto-generated.ts", "copied typedoc.js"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
