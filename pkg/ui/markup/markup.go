// Package markup is a small template engine for rich terminal output.
// Go templates are expanded first, then XML-like tags are replaced by
// lipgloss-styled text. Tag names map to entries in a StyleMap; unknown
// tags pass their content through unchanged, and input that is not
// well-formed XML is returned as-is.
//
// The <no-format> tag inverts: its content renders only when the
// terminal has no color support, which is how plain-text fallbacks for
// glyphs are expressed:
//
//	<Success>ok</Success><no-format> (ok)</no-format>
package markup

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to lipgloss styles.
type StyleMap map[string]lipgloss.Style

// noFormatTag renders only without color support.
const noFormatTag = "no-format"

var renderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer replaces the renderer whose color profile gates
// styling. Tests use this to pin the profile.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	renderer = r
}

// Render expands the Go template with data, then expands style tags.
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("markup").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags with styled text. Invalid XML is
// returned unchanged rather than failing the render.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<markup>" + input + "</markup>"); err != nil {
		return input, nil
	}
	root := doc.Root()
	if root == nil {
		return input, nil
	}

	plain := renderer.ColorProfile() == termenv.Ascii
	return expandChildren(root, styles, plain), nil
}

// StripTags removes every tag, keeping all content including that of
// <no-format> tags.
func StripTags(input string) string {
	if input == "" {
		return ""
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<markup>" + input + "</markup>"); err != nil {
		return input
	}
	root := doc.Root()
	if root == nil {
		return input
	}

	return stripChildren(root)
}

func expandChildren(el *etree.Element, styles StyleMap, plain bool) string {
	var b strings.Builder
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(expandElement(t, styles, plain))
		}
	}
	return b.String()
}

func expandElement(el *etree.Element, styles StyleMap, plain bool) string {
	content := expandChildren(el, styles, plain)

	if el.Tag == noFormatTag {
		if plain {
			return content
		}
		return ""
	}

	if style, ok := styles[el.Tag]; ok && !plain {
		return style.Render(content)
	}
	return content
}

func stripChildren(el *etree.Element) string {
	var b strings.Builder
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(stripChildren(t))
		}
	}
	return b.String()
}
