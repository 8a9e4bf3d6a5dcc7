package vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/commands/vars"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/testutil"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

func setupVars(t *testing.T) string {
	t.Helper()

	t.Setenv(paths.EnvManageDataDir, t.TempDir())
	t.Setenv(paths.EnvManageConfigDir, t.TempDir())
	return t.TempDir()
}

func TestShowVars(t *testing.T) {
	host := types.NewHost("worklaptop", nil)

	t.Run("defaults_with_host_overrides_in_order", func(t *testing.T) {
		root := setupVars(t)
		testutil.CreateFile(t, root, "config/defaults",
			"EMAIL=dev@example.com\nEDITOR=vim\n")
		testutil.CreateFile(t, root, "config/worklaptop.conf",
			"EMAIL=work@example.com\nSIGNING_KEY=ABC123\n")

		result, err := vars.ShowVars(vars.ShowVarsOptions{DotfilesRoot: root, Host: host})
		require.NoError(t, err)

		assert.Equal(t, "worklaptop", result.Hostname)
		require.Len(t, result.Entries, 3)

		assert.Equal(t, types.VarEntry{Key: "EMAIL", Value: "work@example.com"}, result.Entries[0])
		assert.Equal(t, types.VarEntry{Key: "EDITOR", Value: "vim"}, result.Entries[1])
		assert.Equal(t, types.VarEntry{Key: "SIGNING_KEY", Value: "ABC123"}, result.Entries[2])
	})

	t.Run("missing_files_yield_empty_mapping", func(t *testing.T) {
		root := setupVars(t)

		result, err := vars.ShowVars(vars.ShowVarsOptions{DotfilesRoot: root, Host: host})
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
	})
}
