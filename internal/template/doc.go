// Package template holds the Template Description: the in-memory aggregate of
// package metadata, runtime dependency declarations and bundle configuration
// handed to a generator. Assemble is the only way the scaffold builds one.
package template
