package genconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/commands/genconfig"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/testutil"
)

func setupGenConfig(t *testing.T) (root, cfgDir string) {
	t.Helper()

	cfgDir = t.TempDir()
	t.Setenv(paths.EnvManageDataDir, t.TempDir())
	t.Setenv(paths.EnvManageConfigDir, cfgDir)
	return t.TempDir(), cfgDir
}

func TestGenConfig(t *testing.T) {
	t.Run("shows_effective_configuration", func(t *testing.T) {
		root, cfgDir := setupGenConfig(t)
		testutil.CreateFile(t, cfgDir, "config.toml", "[template]\nsuffix = \".tpl\"\n")

		result, err := genconfig.GenConfig(genconfig.GenConfigOptions{DotfilesRoot: root})
		require.NoError(t, err)

		assert.False(t, result.Written)
		assert.Contains(t, result.ConfigContent, ".tpl")
	})

	t.Run("write_creates_a_starter_file", func(t *testing.T) {
		root, cfgDir := setupGenConfig(t)

		result, err := genconfig.GenConfig(genconfig.GenConfigOptions{DotfilesRoot: root, Write: true})
		require.NoError(t, err)

		assert.True(t, result.Written)
		assert.Equal(t, filepath.Join(cfgDir, "config.toml"), result.Path)
		assert.True(t, testutil.FileExists(t, result.Path))
	})

	t.Run("write_refuses_to_overwrite", func(t *testing.T) {
		root, cfgDir := setupGenConfig(t)
		testutil.CreateFile(t, cfgDir, "config.toml", "[template]\nsuffix = \".tpl\"\n")

		_, err := genconfig.GenConfig(genconfig.GenConfigOptions{DotfilesRoot: root, Write: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})
}
