package generator

import (
	"embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templatesFS embed.FS

const templatesRoot = "templates"

// fileSpec maps one embedded template to its output path.
type fileSpec struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
	When     string `yaml:"when,omitempty"`
}

type fileManifest struct {
	Files []fileSpec `yaml:"files"`
	Seeds []fileSpec `yaml:"seeds"`
}

var (
	manifestOnce sync.Once
	manifest     fileManifest
	manifestErr  error
)

// loadManifest parses templates/manifest.yaml once.
func loadManifest() (*fileManifest, error) {
	manifestOnce.Do(func() {
		data, err := templatesFS.ReadFile(templatesRoot + "/manifest.yaml")
		if err != nil {
			manifestErr = fmt.Errorf("reading template manifest: %w", err)
			return
		}
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			manifestErr = fmt.Errorf("parsing template manifest: %w", err)
		}
	})
	return &manifest, manifestErr
}

// Outputs returns the paths, relative to the template directory, of every
// file Engine renders on each run.
func Outputs() ([]string, error) {
	m, err := loadManifest()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		out = append(out, f.Output)
	}
	return out, nil
}
