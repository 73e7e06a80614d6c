// Package cli defines the Cobra command tree for the tsscaffold CLI. Running
// the root command with no arguments scaffolds the package in the current
// directory; the other commands inspect or prepare that package. Command
// implementations delegate to internal packages and only handle flag parsing,
// I/O formatting, and user interaction.
package cli
