// Package config loads the layered application configuration: embedded
// defaults, then the user configuration file, then MANAGE_* environment
// variables. Repository layout is fixed and lives in pkg/paths; only
// behavior knobs belong here.
package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultConfigContent returns the content of the embedded defaults file
func GetDefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the application configuration
type Config struct {
	Template TemplateConfig `koanf:"template" toml:"template"`
	Packages PackagesConfig `koanf:"packages" toml:"packages"`
	Linker   LinkerConfig   `koanf:"linker" toml:"linker"`
}

// TemplateConfig controls template file handling
type TemplateConfig struct {
	// Suffix marks files for rendering; it is stripped from destinations
	Suffix string `koanf:"suffix" toml:"suffix"`
}

// PackagesConfig controls package discovery
type PackagesConfig struct {
	// Ignore lists directory names skipped during discovery
	Ignore []string `koanf:"ignore" toml:"ignore"`
}

// LinkerConfig controls the external linker invocation
type LinkerConfig struct {
	// Binary is the linker executable name or path
	Binary string `koanf:"binary" toml:"binary"`

	// Target is the link target directory; empty means the home directory
	Target string `koanf:"target" toml:"target"`
}
