// Package config manages user-level settings stored at ~/.tsscaffold/config.yaml.
// Settings can be overridden with TSSCAFFOLD_* environment variables and cover
// the template directory name, the metadata file name and the license holder
// written into generated files.
package config
