package styles

import (
	"io"

	"github.com/charmbracelet/colorprofile"
)

// Status symbols (ASCII-safe fallbacks are handled by the terminal font;
// these are plain unicode, not nerd-font glyphs).
const (
	SymbolOK   = "✓"
	SymbolWarn = "⚠"
	SymbolFail = "✕"
)

// OK returns a green success marker.
func OK() string {
	return SuccessStyle.Render(SymbolOK)
}

// Warn returns a yellow warning marker.
func Warn() string {
	return WarningStyle.Render(SymbolWarn)
}

// Fail returns a red failure marker.
func Fail() string {
	return ErrorStyle.Render(SymbolFail)
}

// Writer wraps out so styled strings degrade to the terminal's actual
// color capabilities (and to plain text on pipes and dumb terminals).
func Writer(out io.Writer, environ []string) io.Writer {
	return colorprofile.NewWriter(out, environ)
}
