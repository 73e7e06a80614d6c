package template

// DefaultEntryFile is the entry point of the main bundle, relative to src/.
const DefaultEntryFile = "./index.ts"

// DefaultExternals returns the runtime dependencies loaded by the consumer.
func DefaultExternals() Dependencies {
	return Dependencies{
		{Name: "@youwol/dataframe", Version: "^0.1.0"},
		{Name: "@youwol/math", Version: "^0.1.0"},
		{Name: "@youwol/io", Version: "^0.1.0"},
	}
}

// DefaultIncluded returns the dependencies embedded in the bundle.
func DefaultIncluded() Dependencies {
	return Dependencies{}
}

// DefaultDependencies returns the fixed dependency set of the package.
func DefaultDependencies() DependencySet {
	return DependencySet{
		RunTime: RunTimeDeps{
			Externals:        DefaultExternals(),
			IncludedInBundle: DefaultIncluded(),
		},
	}
}
