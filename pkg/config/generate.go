package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
)

// Marshal renders a configuration as TOML, used by the config command to
// show the effective settings.
func Marshal(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}

// GenerateStarterContent returns the embedded defaults with every value
// commented out, suitable for seeding a user configuration file.
func GenerateStarterContent() string {
	return commentOutConfigValues(GetDefaultConfigContent())
}

// commentOutConfigValues takes TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [template], [linker]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
