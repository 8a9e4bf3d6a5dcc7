package initialize_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/commands/initialize"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/testutil"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

func setupInit(t *testing.T) string {
	t.Helper()

	t.Setenv(paths.EnvManageDataDir, t.TempDir())
	t.Setenv(paths.EnvManageConfigDir, t.TempDir())
	return t.TempDir()
}

func TestInitPackage(t *testing.T) {
	host := types.NewHost("worklaptop", nil)

	t.Run("creates_common_package_with_starter", func(t *testing.T) {
		root := setupInit(t)

		result, err := initialize.InitPackage(initialize.InitPackageOptions{
			DotfilesRoot: root,
			Host:         host,
			PackageName:  "vim",
		})
		require.NoError(t, err)

		assert.Equal(t, "vim", result.PackageName)
		assert.Equal(t, filepath.Join(root, "packages", "common", "vim"), result.Path)
		assert.Equal(t, []string{"dot-examplerc.tmpl"}, result.FilesCreated)

		content := testutil.ReadFile(t, filepath.Join(result.Path, "dot-examplerc.tmpl"))
		assert.Contains(t, content, "${EXAMPLE_VALUE}")
	})

	t.Run("host_specific_lands_under_the_host_tree", func(t *testing.T) {
		root := setupInit(t)

		result, err := initialize.InitPackage(initialize.InitPackageOptions{
			DotfilesRoot: root,
			Host:         host,
			PackageName:  "vim",
			HostSpecific: true,
		})
		require.NoError(t, err)

		assert.Equal(t,
			filepath.Join(root, "packages", "host-specific", "worklaptop", "vim"),
			result.Path)
	})

	t.Run("existing_package_is_an_error", func(t *testing.T) {
		root := setupInit(t)
		testutil.CreateDir(t, root, "packages/common/vim")

		_, err := initialize.InitPackage(initialize.InitPackageOptions{
			DotfilesRoot: root,
			Host:         host,
			PackageName:  "vim",
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("invalid_names_are_rejected", func(t *testing.T) {
		root := setupInit(t)

		for _, name := range []string{"", "a/b", "bad:name"} {
			_, err := initialize.InitPackage(initialize.InitPackageOptions{
				DotfilesRoot: root,
				Host:         host,
				PackageName:  name,
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		}
	})
}
