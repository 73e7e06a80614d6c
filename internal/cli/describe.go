package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/config"
	"github.com/youwol/tsscaffold/internal/metadata"
	"github.com/youwol/tsscaffold/internal/template"
	"go.yaml.in/yaml/v3"
)

var describeFormat string

func init() {
	describeCmd.Flags().StringVarP(&describeFormat, "output", "o", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the Template Description without generating files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		meta, err := metadata.Parse(afero.NewOsFs(), filepath.Join(root, config.MetadataFile()))
		if err != nil {
			return err
		}
		tpl := template.Assemble(root, meta, template.DefaultDependencies())

		var out []byte
		switch describeFormat {
		case "json":
			out, err = json.MarshalIndent(tpl, "", "  ")
			if err == nil {
				out = append(out, '\n')
			}
		case "yaml":
			out, err = yaml.Marshal(tpl)
		default:
			return fmt.Errorf("--output must be 'yaml' or 'json', got %q", describeFormat)
		}
		if err != nil {
			return fmt.Errorf("encoding template description: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
