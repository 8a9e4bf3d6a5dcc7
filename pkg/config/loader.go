package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
)

// EnvPrefix is the prefix for configuration environment variables.
// MANAGE_LINKER_BINARY=gstow maps to linker.binary.
const EnvPrefix = "MANAGE_"

// userConfigFiles are tried in order inside the config directory; the
// first one found is loaded.
var userConfigFiles = []struct {
	name   string
	parser koanf.Parser
}{
	{"config.toml", toml.Parser()},
	{"config.yaml", yaml.Parser()},
}

// Load builds the effective configuration. configDir is the manage config
// directory (paths.ConfigDir); an empty string skips the user file layer.
func Load(configDir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User configuration file, if present
	if configDir != "" {
		for _, candidate := range userConfigFiles {
			path := filepath.Join(configDir, candidate.name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), candidate.parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load configuration from %s", path)
			}
			break
		}
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
