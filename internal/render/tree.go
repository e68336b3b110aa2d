package render

import (
	"io"
	"strings"

	"github.com/vvka-141/fileman/pkg/fileman"
)

var (
	connectorMid  = fileman.GlyphTee + fileman.GlyphHorizontal + fileman.GlyphHorizontal + " "
	connectorLast = fileman.GlyphElbow + fileman.GlyphHorizontal + fileman.GlyphHorizontal + " "
	guideOpen     = fileman.GlyphVertical + "   "
	guideBlank    = "    "
)

// TreeRenderer writes entries with box-drawing connectors.
//
// ancestors[d] is true while the most recent entry seen at depth d has more
// siblings to come, which keeps a vertical guide open in that column for
// every descendant. It is set right after the entry's own line and is only
// overwritten by the next entry at the same depth. Index 0 is never used.
// A TreeRenderer draws one traversal; create a new one per walk.
type TreeRenderer struct {
	out       io.Writer
	styler    Styler
	ancestors []bool
}

// NewTreeRenderer creates a tree renderer writing to out.
// A nil styler leaves names untouched.
func NewTreeRenderer(out io.Writer, styler Styler) *TreeRenderer {
	return &TreeRenderer{out: out, styler: orPlain(styler)}
}

// Visit writes the line for entry. It is a fileman.VisitFunc.
func (t *TreeRenderer) Visit(entry fileman.DirEntry) error {
	depth := entry.Depth
	if depth < 1 {
		depth = 1
	}

	var line strings.Builder
	for j := 1; j < depth; j++ {
		if t.open(j) {
			line.WriteString(guideOpen)
		} else {
			line.WriteString(guideBlank)
		}
	}
	if entry.Last {
		line.WriteString(connectorLast)
	} else {
		line.WriteString(connectorMid)
	}
	line.WriteString(t.styler.Style(entry))
	line.WriteByte('\n')

	if err := writeLine(t.out, entry.Path, line.String()); err != nil {
		return err
	}

	t.set(depth, !entry.Last)
	return nil
}

func (t *TreeRenderer) open(depth int) bool {
	return depth < len(t.ancestors) && t.ancestors[depth]
}

func (t *TreeRenderer) set(depth int, open bool) {
	for len(t.ancestors) <= depth {
		t.ancestors = append(t.ancestors, false)
	}
	t.ancestors[depth] = open
}
