package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/config"
	"github.com/youwol/tsscaffold/internal/metadata"
	"github.com/youwol/tsscaffold/internal/toolchain"
)

var doctorChecker = &toolchain.Checker{}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the package and the JavaScript toolchain",
	Long: `Verify that Node.js and npm are installed and recent enough to build the
generated package, and that package.json can be read by the scaffold.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		healthy := true

		fmt.Fprintln(out, "Toolchain:")
		statuses := doctorChecker.Check(cmd.Context(), toolchain.DefaultTools)
		for _, st := range statuses {
			switch {
			case st.OK:
				fmt.Fprintf(out, "  ✓ %-5s %s (%s)\n", st.Tool.Name, st.Version, st.Path)
			case st.Tool.Required:
				fmt.Fprintf(out, "  ✗ %-5s %s\n", st.Tool.Name, st.Problem)
			default:
				fmt.Fprintf(out, "  - %-5s %s (optional)\n", st.Tool.Name, st.Problem)
			}
		}
		if !toolchain.Healthy(statuses) {
			healthy = false
		}

		root, err := resolveRoot()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nPackage:")
		path := filepath.Join(root, config.MetadataFile())
		if m, err := metadata.Parse(afero.NewOsFs(), path); err != nil {
			fmt.Fprintf(out, "  ✗ %v\n", err)
			healthy = false
		} else {
			fmt.Fprintf(out, "  ✓ %s@%s\n", m.Name, m.Version)
		}

		if !healthy {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}
