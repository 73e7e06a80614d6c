package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// initialDocument is the package.json written by Create. Field order follows
// npm's own `npm init` output.
type initialDocument struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Author      string `json:"author"`
	License     string `json:"license"`
	Main        string `json:"main"`
	Types       string `json:"types"`
}

// Create writes a minimal package.json for m at path. It refuses to touch an
// existing file.
func Create(fsys afero.Fs, path string, m *Metadata) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		return fmt.Errorf("%s already exists: %w", path, os.ErrExist)
	}

	doc := initialDocument{
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Author:      m.Author,
		License:     "MIT",
		Main:        "dist/" + BundleName(m.Name) + ".js",
		Types:       "src/index.ts",
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// BundleName strips the npm scope from a package name, "@youwol/geo" -> "geo".
func BundleName(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}
