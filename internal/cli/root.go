package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/branding"
	"github.com/youwol/tsscaffold/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags shared by every command.
var (
	packageDir string
	quiet      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` regenerates the boilerplate of a TypeScript library package.

Run with no arguments inside a package directory: it reads package.json,
renders the template directory (.template/) and copies README.md, LICENSE,
package.json, tsconfig.json, webpack.config.ts and the other boilerplate
files into the package root, overwriting them.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runScaffold,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&packageDir, "dir", "C", ".", "Package root directory")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "List every generated file")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveRoot returns the absolute package root selected by --dir.
func resolveRoot() (string, error) {
	root, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("resolving package directory %q: %w", packageDir, err)
	}
	return root, nil
}

// progress returns the writer for progress lines, honoring --quiet.
func progress(cmd *cobra.Command) io.Writer {
	if quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}
