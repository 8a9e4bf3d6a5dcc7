package types_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

func TestNewHost(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		key     string
		want    string
		wantOK  bool
	}{
		{
			name:    "simple_variable",
			environ: []string{"HOME=/home/user", "SHELL=/bin/zsh"},
			key:     "SHELL",
			want:    "/bin/zsh",
			wantOK:  true,
		},
		{
			name:    "value_containing_equals",
			environ: []string{"OPTS=-a=1 -b=2"},
			key:     "OPTS",
			want:    "-a=1 -b=2",
			wantOK:  true,
		},
		{
			name:    "empty_value",
			environ: []string{"EMPTY="},
			key:     "EMPTY",
			want:    "",
			wantOK:  true,
		},
		{
			name:    "missing_variable",
			environ: []string{"HOME=/home/user"},
			key:     "MISSING",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "entry_without_equals_skipped",
			environ: []string{"GARBAGE"},
			key:     "GARBAGE",
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := types.NewHost("testhost", tt.environ)
			got, ok := host.Getenv(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackageFilePath(t *testing.T) {
	pkg := types.Package{
		Name:  "vim",
		Path:  "/dotfiles/packages/common/vim",
		Scope: types.ScopeCommon,
	}

	got := pkg.FilePath(".vimrc")
	assert.Equal(t, filepath.Join("/dotfiles/packages/common/vim", ".vimrc"), got)
}

func TestPackageResultFailedFiles(t *testing.T) {
	renderErr := errors.New("render failed")
	result := types.PackageResult{
		Package: types.Package{Name: "zsh"},
		Files: []types.FileResult{
			{RelPath: ".zshrc", Action: types.ActionRendered},
			{RelPath: ".zshenv.tmpl", Action: types.ActionRendered, Err: renderErr},
			{RelPath: ".zlogin", Action: types.ActionCopied},
		},
	}

	failed := result.FailedFiles()
	assert.Len(t, failed, 1)
	assert.Equal(t, ".zshenv.tmpl", failed[0].RelPath)
	assert.Equal(t, renderErr, failed[0].Err)
}
