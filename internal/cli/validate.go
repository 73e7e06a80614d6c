package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/config"
	"github.com/youwol/tsscaffold/internal/metadata"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the package metadata",
	Long:  `Check package.json against the metadata schema and report every issue found.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}
		path := filepath.Join(root, config.MetadataFile())

		result, err := metadata.ValidateFile(afero.NewOsFs(), path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s is valid\n", path)
			return nil
		}

		fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("%s is invalid", path)
	},
}
