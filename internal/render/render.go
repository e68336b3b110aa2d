package render

import (
	"io"

	"github.com/vvka-141/fileman/internal/files/walker"
	"github.com/vvka-141/fileman/pkg/fileman"
)

// Walker is the traversal a Renderer drives.
// CheckRoot lets the renderer refuse a bad root before writing anything.
type Walker interface {
	fileman.DirectoryWalker
	CheckRoot(root string) error
}

// Renderer draws directory subtrees in flat or tree form.
type Renderer struct {
	walker Walker
	styler Styler
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyler decorates entry names. The root line is never styled.
func WithStyler(styler Styler) Option {
	return func(r *Renderer) {
		r.styler = orPlain(styler)
	}
}

// New creates a renderer driving w. A nil w walks the OS filesystem.
func New(w Walker, opts ...Option) *Renderer {
	if w == nil {
		w = walker.NewWalker(nil)
	}
	r := &Renderer{walker: w, styler: PlainStyler{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dir writes the flat listing of root to out.
func (r *Renderer) Dir(out io.Writer, root string) error {
	return r.render(out, root, NewFlatRenderer(out, r.styler).Visit)
}

// Tree writes the box-drawn tree of root to out.
func (r *Renderer) Tree(out io.Writer, root string) error {
	return r.render(out, root, NewTreeRenderer(out, r.styler).Visit)
}

func (r *Renderer) render(out io.Writer, root string, visit fileman.VisitFunc) error {
	if err := r.walker.CheckRoot(root); err != nil {
		return err
	}
	if err := writeLine(out, root, root+"\n"); err != nil {
		return err
	}
	return r.walker.Walk(root, visit)
}

// writeLine writes line in one call. Any failure, including a short write,
// aborts the traversal.
func writeLine(out io.Writer, path, line string) error {
	n, err := io.WriteString(out, line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fileman.NewPathError("render", path, fileman.ErrIO, err)
	}
	return nil
}
