// Package toolchain checks that the downstream JavaScript toolchain consuming
// the generated files (Node.js, npm and optionally yarn) is installed and
// recent enough.
package toolchain
