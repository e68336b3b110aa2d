package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/fileman/pkg/fileman"
)

// Styler turns an entry into the text drawn for its name.
type Styler interface {
	Style(entry fileman.DirEntry) string
}

// PlainStyler draws names unchanged.
type PlainStyler struct{}

// Style implements Styler.
func (PlainStyler) Style(entry fileman.DirEntry) string { return entry.Name }

func orPlain(s Styler) Styler {
	if s == nil {
		return PlainStyler{}
	}
	return s
}

// ColorDirectory is the foreground used for directory names.
var ColorDirectory = lipgloss.Color("39") // Blue

// ColorStyler draws directories bold blue and leaves everything else in the
// terminal's default colour.
type ColorStyler struct {
	directory lipgloss.Style
	other     lipgloss.Style
}

// NewColorStyler creates a colour styler whose escape sequences match the
// colour profile detected for out.
func NewColorStyler(out io.Writer) *ColorStyler {
	return newColorStyler(lipgloss.NewRenderer(out))
}

func newColorStyler(r *lipgloss.Renderer) *ColorStyler {
	return &ColorStyler{
		directory: r.NewStyle().Bold(true).Foreground(ColorDirectory),
		other:     r.NewStyle(),
	}
}

// Style implements Styler.
func (c *ColorStyler) Style(entry fileman.DirEntry) string {
	if entry.IsDir() {
		return c.directory.Render(entry.Name)
	}
	return c.other.Render(entry.Name)
}

// ColorEnabled reports whether colour output should be used for out.
//
// Returns false if:
//   - colour was not requested
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is not a terminal (piped or redirected output stays byte-exact)
func ColorEnabled(requested bool, out io.Writer) bool {
	if !requested {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
