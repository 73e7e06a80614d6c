package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// ParseError reports a metadata file that is missing, unreadable or
// malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing metadata %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// document mirrors the consumed subset of package.json. Pointers tell a
// missing field apart from an empty one.
type document struct {
	Name        *string         `json:"name"`
	Version     *string         `json:"version"`
	Description *string         `json:"description"`
	Author      json.RawMessage `json:"author"`
}

// Parse reads the metadata file at path and returns its consumed fields.
// Every failure is returned as a *ParseError.
func Parse(fsys afero.Fs, path string) (*Metadata, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	m, err := Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return m, nil
}

// Decode decodes raw package.json bytes.
func Decode(data []byte) (*Metadata, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	for _, f := range []struct {
		key string
		val *string
	}{
		{"name", doc.Name},
		{"version", doc.Version},
		{"description", doc.Description},
	} {
		if f.val == nil {
			return nil, fmt.Errorf("missing required field %q", f.key)
		}
	}

	author, err := decodeAuthor(doc.Author)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		Name:        *doc.Name,
		Version:     *doc.Version,
		Description: *doc.Description,
		Author:      author,
	}, nil
}

// decodeAuthor accepts either the string or the object form of "author".
func decodeAuthor(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("missing required field %q", "author")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var p Person
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", fmt.Errorf("field \"author\" must be a string or an object with a name: %w", err)
	}
	if p.Name == "" {
		return "", fmt.Errorf("field \"author\" object has no name")
	}
	return p.String(), nil
}
