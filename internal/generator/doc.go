// Package generator turns a Template Description into the files of a
// TypeScript library package. The Generator interface is the only contract
// the scaffold depends on; Engine is the implementation backed by an embedded
// pongo2 template set.
//
// Engine renders the regenerated files into the template directory
// (".template" by default) and seeds user-owned sources such as src/index.ts
// directly into the package root when they do not exist yet.
package generator
