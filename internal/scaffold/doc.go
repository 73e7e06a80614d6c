// Package scaffold runs the scaffold of a TypeScript library package: it reads
// the package metadata, assembles the Template Description, hands it to a
// generator and copies the regenerated boilerplate from the template directory
// into the package root.
//
// The run is a straight line with no retry and no rollback. Every copy
// overwrites its destination, and a failure leaves the files copied before it
// on disk.
package scaffold
