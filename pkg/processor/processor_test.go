package processor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/processor"
	"github.com/arcaartem/manage-dotfiles/pkg/template"
	"github.com/arcaartem/manage-dotfiles/pkg/testutil"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	"github.com/arcaartem/manage-dotfiles/pkg/vars"
)

func setupProcessor(t *testing.T) (*processor.Processor, string, string) {
	t.Helper()

	m := vars.NewMapping()
	m.Set("EMAIL", "dev@example.com")
	m.Set("EDITOR", "vim")
	host := types.NewHost("worklaptop", []string{"SHELL=/bin/zsh"})

	p := processor.New(filesystem.NewOS(), template.NewRenderer(m, host), ".tmpl")

	pkgDir := t.TempDir()
	targetRoot := t.TempDir()
	return p, pkgDir, targetRoot
}

func pkgAt(name, path string) types.Package {
	return types.Package{Name: name, Path: path, Scope: types.ScopeCommon}
}

func TestProcess(t *testing.T) {
	t.Run("copies_plain_files_verbatim", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, "dot-zshrc", "export PATH=$PATH:~/bin\n")

		result := p.Process(pkgAt("zsh", pkgDir), targetRoot)
		require.NoError(t, result.Err)
		require.Len(t, result.Files, 1)

		assert.Equal(t, types.ActionCopied, result.Files[0].Action)
		testutil.AssertFileContent(t, filepath.Join(targetRoot, "zsh", "dot-zshrc"),
			"export PATH=$PATH:~/bin\n")
	})

	t.Run("renders_templates_and_strips_suffix", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, "dot-gitconfig.tmpl",
			"[user]\n\temail = ${EMAIL}\n\tshell = ${SHELL}\n\tsigningkey = ${UNSET}\n")

		result := p.Process(pkgAt("git", pkgDir), targetRoot)
		require.NoError(t, result.Err)
		require.Len(t, result.Files, 1)

		assert.Equal(t, types.ActionRendered, result.Files[0].Action)
		assert.Equal(t, "dot-gitconfig.tmpl", result.Files[0].RelPath)

		testutil.AssertNoFile(t, filepath.Join(targetRoot, "git", "dot-gitconfig.tmpl"))
		testutil.AssertFileContent(t, filepath.Join(targetRoot, "git", "dot-gitconfig"),
			"[user]\n\temail = dev@example.com\n\tshell = /bin/zsh\n\tsigningkey = \n")
	})

	t.Run("recreates_nested_directories", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, "dot-config/nvim/init.lua", "-- init\n")
		testutil.CreateFile(t, pkgDir, "dot-config/nvim/lua/opts.lua.tmpl", "editor = '${EDITOR}'\n")

		result := p.Process(pkgAt("nvim", pkgDir), targetRoot)
		require.NoError(t, result.Err)
		require.Len(t, result.Files, 2)

		testutil.AssertFileContent(t,
			filepath.Join(targetRoot, "nvim", "dot-config", "nvim", "init.lua"), "-- init\n")
		testutil.AssertFileContent(t,
			filepath.Join(targetRoot, "nvim", "dot-config", "nvim", "lua", "opts.lua"),
			"editor = 'vim'\n")
	})

	t.Run("preserves_executable_bit", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		script := testutil.CreateFile(t, pkgDir, "bin/backup.sh", "#!/bin/sh\n")
		require.NoError(t, os.Chmod(script, 0755))

		result := p.Process(pkgAt("scripts", pkgDir), targetRoot)
		require.NoError(t, result.Err)

		info, err := os.Stat(filepath.Join(targetRoot, "scripts", "bin", "backup.sh"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0100)
	})

	t.Run("broken_template_does_not_block_siblings", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, "good.conf", "ok\n")
		testutil.CreateFile(t, pkgDir, "broken.conf.tmpl", "value = ${UNTERMINATED\n")
		testutil.CreateFile(t, pkgDir, "also-good.conf.tmpl", "editor = ${EDITOR}\n")

		result := p.Process(pkgAt("mixed", pkgDir), targetRoot)
		require.NoError(t, result.Err)
		require.Len(t, result.Files, 3)

		failed := result.FailedFiles()
		require.Len(t, failed, 1)
		assert.Equal(t, "broken.conf.tmpl", failed[0].RelPath)
		assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrTemplateRender))

		testutil.AssertFileContent(t, filepath.Join(targetRoot, "mixed", "good.conf"), "ok\n")
		testutil.AssertFileContent(t, filepath.Join(targetRoot, "mixed", "also-good.conf"), "editor = vim\n")
		testutil.AssertNoFile(t, filepath.Join(targetRoot, "mixed", "broken.conf"))
	})

	t.Run("file_named_exactly_suffix_is_copied", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, ".tmpl", "${EDITOR}\n")

		result := p.Process(pkgAt("odd", pkgDir), targetRoot)
		require.NoError(t, result.Err)
		require.Len(t, result.Files, 1)

		assert.Equal(t, types.ActionCopied, result.Files[0].Action)
		testutil.AssertFileContent(t, filepath.Join(targetRoot, "odd", ".tmpl"), "${EDITOR}\n")
	})

	t.Run("hidden_files_are_processed", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, ".hidden-rc.tmpl", "shell = ${SHELL}\n")

		result := p.Process(pkgAt("hidden", pkgDir), targetRoot)
		require.NoError(t, result.Err)

		testutil.AssertFileContent(t, filepath.Join(targetRoot, "hidden", ".hidden-rc"),
			"shell = /bin/zsh\n")
	})

	t.Run("overwrites_but_never_deletes", func(t *testing.T) {
		p, pkgDir, targetRoot := setupProcessor(t)
		testutil.CreateFile(t, pkgDir, "current.conf", "new contents\n")
		testutil.CreateFile(t, targetRoot, "tools/current.conf", "old contents\n")
		stale := testutil.CreateFile(t, targetRoot, "tools/stale.conf", "left behind\n")

		result := p.Process(pkgAt("tools", pkgDir), targetRoot)
		require.NoError(t, result.Err)

		testutil.AssertFileContent(t, filepath.Join(targetRoot, "tools", "current.conf"), "new contents\n")
		testutil.AssertFileContent(t, stale, "left behind\n")
	})

	t.Run("missing_package_dir_fails_the_package", func(t *testing.T) {
		p, _, targetRoot := setupProcessor(t)

		result := p.Process(pkgAt("ghost", "/nonexistent/ghost"), targetRoot)
		require.Error(t, result.Err)
		assert.True(t, errors.IsErrorCode(result.Err, errors.ErrPackageAccess))
		assert.Empty(t, result.Files)
	})
}
