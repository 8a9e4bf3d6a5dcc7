package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	// init() already ran; the registry must hold the embedded set.
	require.NotEmpty(t, Registry)

	for _, name := range []string{"Title", "Success", "Error", "Warning", "Muted", "Package", "Path"} {
		_, ok := Registry[name]
		assert.True(t, ok, "expected style %q in registry", name)
	}
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStyles(defaultStyles))
	})

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "minimal config",
			yaml: `
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Plain: {}
  Fancy:
    bold: true
    foreground: accent
`,
			check: func(t *testing.T) {
				assert.Len(t, Registry, 2)
				assert.True(t, Registry["Fancy"].GetBold())
				assert.False(t, Registry["Plain"].GetBold())
			},
		},
		{
			name: "unknown color name is ignored",
			yaml: `
styles:
  Odd:
    foreground: nonexistent
`,
			check: func(t *testing.T) {
				_, ok := Registry["Odd"]
				assert.True(t, ok)
			},
		},
		{
			name:    "malformed yaml",
			yaml:    "styles: [not a map",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadStyles([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t)
		})
	}
}

func TestGetUnknownStyleIsZero(t *testing.T) {
	style := Get("NoSuchStyle")
	assert.Equal(t, "text", style.Render("text"))
}
