package template

import "github.com/youwol/tsscaffold/internal/metadata"

// Assemble builds the Template Description of the library rooted at root.
// Metadata fields pass through unchanged and the main bundle load list is the
// external dependency names in declaration order. No check is made for a name
// declared both as external and as included in the bundle.
func Assemble(root string, meta *metadata.Metadata, deps DependencySet) *Template {
	externals := deps.RunTime.Externals.Clone()

	return &Template{
		Path:             root,
		Type:             PackageTypeLibrary,
		Name:             meta.Name,
		Version:          meta.Version,
		ShortDescription: meta.Description,
		Author:           meta.Author,
		Dependencies: DependencySet{
			RunTime: RunTimeDeps{
				Externals:        externals,
				IncludedInBundle: deps.RunTime.IncludedInBundle.Clone(),
			},
		},
		Bundles: Bundles{
			MainModule: MainModule{
				EntryFile:        DefaultEntryFile,
				LoadDependencies: externals.Names(),
			},
		},
		UserGuide: true,
	}
}
