package scaffold

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// StubFile is the generated source copied into the package's src/ directory.
const StubFile = "src/auto-generated.ts"

// StaticFiles are copied from the template directory to the package root, in
// this order.
var StaticFiles = []string{
	"README.md",
	".gitignore",
	".npmignore",
	".prettierignore",
	"LICENSE",
	"package.json",
	"tsconfig.json",
	"webpack.config.ts",
	"typedoc.js",
}

// copyFile copies src to dst byte for byte, replacing dst if it exists. The
// parent directory of dst is created when missing.
func copyFile(fsys afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fsys, src)
	if err != nil {
		return err
	}

	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	return afero.WriteFile(fsys, dst, data, srcInfo.Mode().Perm())
}
