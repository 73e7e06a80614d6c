package template

// PackageType is the kind of package being generated.
type PackageType string

// Supported package types.
const (
	PackageTypeLibrary     PackageType = "library"
	PackageTypeApplication PackageType = "application"
)

// Dependency is a single package-name to version-constraint entry.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Dependencies is an ordered mapping from package name to version constraint.
// Order is the declaration order and is preserved through generation.
type Dependencies []Dependency

// Names returns the dependency names in declaration order.
func (d Dependencies) Names() []string {
	names := make([]string, 0, len(d))
	for _, dep := range d {
		names = append(names, dep.Name)
	}
	return names
}

// Lookup returns the constraint declared for name.
func (d Dependencies) Lookup(name string) (string, bool) {
	for _, dep := range d {
		if dep.Name == name {
			return dep.Version, true
		}
	}
	return "", false
}

// Clone returns a copy that does not share storage with d.
func (d Dependencies) Clone() Dependencies {
	if d == nil {
		return Dependencies{}
	}
	out := make(Dependencies, len(d))
	copy(out, d)
	return out
}

// RunTimeDeps splits runtime dependencies between the ones resolved by the
// consumer at load time and the ones embedded in the bundle.
type RunTimeDeps struct {
	Externals        Dependencies `json:"externals" yaml:"externals"`
	IncludedInBundle Dependencies `json:"includedInBundle" yaml:"includedInBundle"`
}

// DependencySet groups every dependency declaration of a package.
type DependencySet struct {
	RunTime RunTimeDeps `json:"runTime" yaml:"runTime"`
}

// MainModule describes the main bundle.
type MainModule struct {
	EntryFile        string   `json:"entryFile" yaml:"entryFile"`
	LoadDependencies []string `json:"loadDependencies" yaml:"loadDependencies"`
}

// Bundles lists the bundles produced by the package.
type Bundles struct {
	MainModule MainModule `json:"mainModule" yaml:"mainModule"`
}

// Template is the Template Description passed to a generator.
type Template struct {
	Path             string        `json:"path" yaml:"path"`
	Type             PackageType   `json:"type" yaml:"type"`
	Name             string        `json:"name" yaml:"name"`
	Version          string        `json:"version" yaml:"version"`
	ShortDescription string        `json:"shortDescription" yaml:"shortDescription"`
	Author           string        `json:"author" yaml:"author"`
	Dependencies     DependencySet `json:"dependencies" yaml:"dependencies"`
	Bundles          Bundles       `json:"bundles" yaml:"bundles"`
	UserGuide        bool          `json:"userGuide" yaml:"userGuide"`
}
