package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/youwol/tsscaffold/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyTemplateDir   = "template_dir"
	KeyMetadataFile  = "metadata_file"
	KeyLicenseHolder = "license_holder"
)

// Default values for the known keys.
const (
	DefaultTemplateDir  = ".template"
	DefaultMetadataFile = "package.json"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyTemplateDir, KeyMetadataFile, KeyLicenseHolder}

// Dir returns the path to the config directory (~/.tsscaffold/). The
// TSSCAFFOLD_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplateDir, DefaultTemplateDir)
	viper.SetDefault(KeyMetadataFile, DefaultMetadataFile)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// TemplateDir returns the name of the template directory relative to the
// package root.
func TemplateDir() string {
	if v := Get(KeyTemplateDir); v != "" {
		return v
	}
	return DefaultTemplateDir
}

// MetadataFile returns the name of the metadata file relative to the package
// root.
func MetadataFile() string {
	if v := Get(KeyMetadataFile); v != "" {
		return v
	}
	return DefaultMetadataFile
}

// LicenseHolder returns the configured license holder, or empty when the
// package author should be used.
func LicenseHolder() string {
	return Get(KeyLicenseHolder)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func isKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
