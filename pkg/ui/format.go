// Package ui decides how command results reach the user: rich terminal
// output, plain text, or JSON.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a renderer writes command results.
type Format string

const (
	// FormatAuto defers the choice to DetectFormat at run time.
	FormatAuto Format = "auto"

	// FormatTerminal styles output with colors and status chips.
	FormatTerminal Format = "term"

	// FormatText writes unstyled text, the shape pipes receive.
	FormatText Format = "text"

	// FormatJSON writes the result structure as JSON.
	FormatJSON Format = "json"
)

// ParseFormat maps a --format flag value to a Format. The empty string
// means auto, and a couple of common aliases are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatAuto, fmt.Errorf("unknown format: %s", s)
}

// DetectFormat resolves FormatAuto for a stream. Rich output is only
// worth it on an interactive terminal that can show color; everything
// else gets plain text: NO_COLOR set, output piped or redirected, or a
// terminal whose profile reports no color support.
func DetectFormat(stream *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	fd := stream.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
