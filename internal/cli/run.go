package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/config"
	"github.com/youwol/tsscaffold/internal/generator"
	"github.com/youwol/tsscaffold/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Regenerate the package boilerplate",
	Long: `Read package.json, render the template directory and copy the generated
files into the package root. This is what the root command does when called
without arguments.

Every copied file is overwritten. A failure stops the run and keeps the files
copied before it.`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	out := progress(cmd)
	fsys := afero.NewOsFs()

	opts := []generator.Option{
		generator.WithTemplateDir(config.TemplateDir()),
		generator.WithLicenseHolder(config.LicenseHolder()),
	}
	if verbose {
		opts = append(opts, generator.WithProgress(out))
	}

	runner := &scaffold.Runner{
		Fs:           fsys,
		Root:         root,
		TemplateDir:  config.TemplateDir(),
		MetadataFile: config.MetadataFile(),
		Generator:    generator.New(fsys, opts...),
		Out:          out,
	}

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scaffolded %s@%s at %s/ (%d files copied)\n",
		report.Template.Name, report.Template.Version, root, len(report.Copied))
	return nil
}
