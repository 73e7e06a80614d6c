package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/youwol/tsscaffold/internal/config"
	"github.com/youwol/tsscaffold/internal/metadata"
)

var (
	initYes         bool
	initName        string
	initVersion     string
	initDescription string
	initAuthor      string
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept flag values and defaults without prompting")
	initCmd.Flags().StringVar(&initName, "name", "", "Package name (default: @youwol/<directory name>)")
	initCmd.Flags().StringVar(&initVersion, "version", "0.1.0-wip", "Package version")
	initCmd.Flags().StringVar(&initDescription, "description", "", "Short description")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Package author")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a package.json for a new package",
	Long: `Create a minimal package.json holding the fields the scaffold reads (name,
version, description, author). Values are prompted for unless --yes is given.
An existing package.json is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		m := &metadata.Metadata{
			Name:        initName,
			Version:     initVersion,
			Description: initDescription,
			Author:      initAuthor,
		}
		if m.Name == "" {
			m.Name = "@youwol/" + filepath.Base(root)
		}

		if !initYes {
			if err := askMetadata(m); err != nil {
				return err
			}
		}

		path := filepath.Join(root, config.MetadataFile())
		if err := metadata.Create(afero.NewOsFs(), path, m); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. Run 'tsscaffold validate' to check the metadata")
		fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'tsscaffold' to generate the package boilerplate")
		return nil
	},
}

// askMetadata prompts for every field, using the current values as defaults.
var askMetadata = func(m *metadata.Metadata) error {
	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Package name:", Default: m.Name},
			Validate: survey.Required,
		},
		{
			Name:     "version",
			Prompt:   &survey.Input{Message: "Version:", Default: m.Version},
			Validate: validateVersion,
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description:", Default: m.Description},
		},
		{
			Name:     "author",
			Prompt:   &survey.Input{Message: "Author:", Default: m.Author},
			Validate: survey.Required,
		},
	}

	answers := struct {
		Name        string `survey:"name"`
		Version     string `survey:"version"`
		Description string `survey:"description"`
		Author      string `survey:"author"`
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("reading answers: %w", err)
	}

	m.Name = answers.Name
	m.Version = answers.Version
	m.Description = answers.Description
	m.Author = answers.Author
	return nil
}

// validateVersion is a survey validator accepting semantic versions.
func validateVersion(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("version must be a string")
	}
	if _, err := semver.StrictNewVersion(s); err != nil {
		return fmt.Errorf("%q is not a semantic version", s)
	}
	return nil
}
