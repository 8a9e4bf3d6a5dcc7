// Package template renders ${NAME} variable references in package files.
// References resolve against the variable mapping first, then the host
// environment snapshot, then to an empty string. A '$' not followed by
// '{' is literal text.
package template

import (
	"bytes"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	"github.com/arcaartem/manage-dotfiles/pkg/vars"
)

// Renderer substitutes variable references for one host.
type Renderer struct {
	vars *vars.Mapping
	host types.Host
}

// NewRenderer returns a Renderer over the given mapping and host snapshot.
func NewRenderer(m *vars.Mapping, host types.Host) *Renderer {
	if m == nil {
		m = vars.NewMapping()
	}
	return &Renderer{vars: m, host: host}
}

// Render expands every ${NAME} reference in input. Malformed references
// fail the whole input: an unterminated "${", an empty name, or a name
// character outside [A-Za-z0-9_].
func (r *Renderer) Render(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(input))

	line := 1
	for i := 0; i < len(input); {
		c := input[i]
		if c == '\n' {
			line++
		}
		if c != '$' || i+1 >= len(input) || input[i+1] != '{' {
			buf.WriteByte(c)
			i++
			continue
		}

		// Reference starts; scan the name up to '}'
		start := i + 2
		j := start
		for j < len(input) && input[j] != '}' {
			if !isNameChar(input[j], j == start) {
				return nil, errors.Newf(errors.ErrTemplateSyntax,
					"invalid character %q in variable name on line %d", input[j], line)
			}
			j++
		}
		if j >= len(input) {
			return nil, errors.Newf(errors.ErrTemplateSyntax,
				"unterminated variable reference on line %d", line)
		}
		if j == start {
			return nil, errors.Newf(errors.ErrTemplateSyntax,
				"empty variable name on line %d", line)
		}

		buf.WriteString(r.lookup(string(input[start:j])))
		i = j + 1
	}

	return buf.Bytes(), nil
}

// lookup resolves a name: mapping first, then the host environment,
// then empty. A mapping entry with an empty value still wins.
func (r *Renderer) lookup(name string) string {
	if v, ok := r.vars.Get(name); ok {
		return v
	}
	if v, ok := r.host.Getenv(name); ok {
		return v
	}
	return ""
}

func isNameChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
