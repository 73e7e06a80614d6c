// Package metadata reads the package.json of the package being scaffolded.
// Only the four fields the scaffold consumes (name, version, description,
// author) are decoded; the rest of the document is left untouched. A JSON
// Schema validator reports human-readable issues for the `validate` command.
package metadata
