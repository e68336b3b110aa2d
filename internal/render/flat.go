package render

import (
	"io"
	"strings"

	"github.com/vvka-141/fileman/pkg/fileman"
)

// FlatRenderer writes one line per entry, indented by fileman.IndentUnit per
// level of depth.
type FlatRenderer struct {
	out    io.Writer
	styler Styler
}

// NewFlatRenderer creates a flat renderer writing to out.
// A nil styler leaves names untouched.
func NewFlatRenderer(out io.Writer, styler Styler) *FlatRenderer {
	return &FlatRenderer{out: out, styler: orPlain(styler)}
}

// Visit writes the line for entry. It is a fileman.VisitFunc.
func (f *FlatRenderer) Visit(entry fileman.DirEntry) error {
	var line strings.Builder
	line.WriteString(strings.Repeat(fileman.IndentUnit, entry.Depth))
	line.WriteString(f.styler.Style(entry))
	line.WriteByte('\n')
	return writeLine(f.out, entry.Path, line.String())
}
