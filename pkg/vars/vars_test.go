package vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/testutil"
	"github.com/arcaartem/manage-dotfiles/pkg/vars"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys []string
		wantVals map[string]string
	}{
		{
			name:     "simple_pairs",
			input:    "EMAIL=me@example.com\nEDITOR=vim\n",
			wantKeys: []string{"EMAIL", "EDITOR"},
			wantVals: map[string]string{"EMAIL": "me@example.com", "EDITOR": "vim"},
		},
		{
			name:     "value_containing_equals",
			input:    "OPTS=-a=1 -b=2\n",
			wantKeys: []string{"OPTS"},
			wantVals: map[string]string{"OPTS": "-a=1 -b=2"},
		},
		{
			name:     "empty_value_kept",
			input:    "EMPTY=\n",
			wantKeys: []string{"EMPTY"},
			wantVals: map[string]string{"EMPTY": ""},
		},
		{
			name:     "line_without_equals_skipped",
			input:    "GARBAGE\nGOOD=yes\n",
			wantKeys: []string{"GOOD"},
			wantVals: map[string]string{"GOOD": "yes"},
		},
		{
			name:     "empty_key_skipped",
			input:    "=value\nGOOD=yes\n",
			wantKeys: []string{"GOOD"},
			wantVals: map[string]string{"GOOD": "yes"},
		},
		{
			name:     "crlf_line_endings",
			input:    "A=1\r\nB=2\r\n",
			wantKeys: []string{"A", "B"},
			wantVals: map[string]string{"A": "1", "B": "2"},
		},
		{
			name:     "no_trailing_newline",
			input:    "A=1",
			wantKeys: []string{"A"},
			wantVals: map[string]string{"A": "1"},
		},
		{
			name:     "duplicate_key_last_wins",
			input:    "A=first\nB=2\nA=second\n",
			wantKeys: []string{"A", "B"},
			wantVals: map[string]string{"A": "second", "B": "2"},
		},
		{
			name:     "empty_input",
			input:    "",
			wantKeys: nil,
			wantVals: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := vars.Parse([]byte(tt.input))

			if tt.wantKeys == nil {
				assert.Equal(t, 0, m.Len())
			} else {
				assert.Equal(t, tt.wantKeys, m.Keys())
			}
			for k, want := range tt.wantVals {
				got, ok := m.Get(k)
				assert.True(t, ok, "key %s should be present", k)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestMappingMerge(t *testing.T) {
	t.Run("override_and_append", func(t *testing.T) {
		base := vars.Parse([]byte("A=1\n"))
		host := vars.Parse([]byte("A=2\nB=3\n"))

		base.Merge(host)

		a, _ := base.Get("A")
		b, _ := base.Get("B")
		assert.Equal(t, "2", a)
		assert.Equal(t, "3", b)
		assert.Equal(t, 2, base.Len())
	})

	t.Run("overwrite_keeps_original_position", func(t *testing.T) {
		base := vars.Parse([]byte("A=1\nB=2\nC=3\n"))
		other := vars.Parse([]byte("B=two\nD=4\n"))

		base.Merge(other)

		assert.Equal(t, []string{"A", "B", "C", "D"}, base.Keys())
		b, _ := base.Get("B")
		assert.Equal(t, "two", b)
	})

	t.Run("merge_nil_is_noop", func(t *testing.T) {
		base := vars.Parse([]byte("A=1\n"))
		base.Merge(nil)
		assert.Equal(t, 1, base.Len())
	})
}

func TestLoadForHost(t *testing.T) {
	fs := filesystem.NewOS()

	newPaths := func(t *testing.T, root string) paths.Paths {
		t.Helper()
		p, err := paths.New(root)
		require.NoError(t, err)
		return p
	}

	t.Run("host_overrides_defaults", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateFile(t, root, "config/defaults", "EMAIL=default@example.com\nEDITOR=vim\n")
		testutil.CreateFile(t, root, "config/worklaptop.conf", "EMAIL=work@example.com\n")

		m, err := vars.LoadForHost(fs, newPaths(t, root), "worklaptop")
		require.NoError(t, err)

		email, _ := m.Get("EMAIL")
		editor, _ := m.Get("EDITOR")
		assert.Equal(t, "work@example.com", email)
		assert.Equal(t, "vim", editor)
		assert.Equal(t, []string{"EMAIL", "EDITOR"}, m.Keys())
	})

	t.Run("missing_defaults_file", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateFile(t, root, "config/worklaptop.conf", "ONLY=host\n")

		m, err := vars.LoadForHost(fs, newPaths(t, root), "worklaptop")
		require.NoError(t, err)

		only, ok := m.Get("ONLY")
		assert.True(t, ok)
		assert.Equal(t, "host", only)
	})

	t.Run("missing_host_file", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateFile(t, root, "config/defaults", "A=1\n")

		m, err := vars.LoadForHost(fs, newPaths(t, root), "otherhost")
		require.NoError(t, err)

		assert.Equal(t, 1, m.Len())
	})

	t.Run("no_files_at_all", func(t *testing.T) {
		root := t.TempDir()

		m, err := vars.LoadForHost(fs, newPaths(t, root), "anyhost")
		require.NoError(t, err)

		assert.Equal(t, 0, m.Len())
	})
}
