package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fileman/internal/files/filesystem"
	"github.com/vvka-141/fileman/internal/files/walker"
	"github.com/vvka-141/fileman/pkg/fileman"
)

func newWorld() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/world")
	mfs.AddDir("europe/france")
	mfs.AddDir("usa")
	return mfs
}

func newTestRenderer(mfs *filesystem.MemoryFileSystem, opts ...Option) *Renderer {
	return New(walker.NewWalkerWithFS(mfs, nil), opts...)
}

func TestTree_Connectors(t *testing.T) {
	var out bytes.Buffer
	err := newTestRenderer(newWorld()).Tree(&out, "/world")
	require.NoError(t, err)

	want := "/world\n" +
		"├── europe\n" +
		"│   └── france\n" +
		"└── usa\n"
	assert.Equal(t, want, out.String())
}

func TestDir_Indentation(t *testing.T) {
	var out bytes.Buffer
	err := newTestRenderer(newWorld()).Dir(&out, "/world")
	require.NoError(t, err)

	want := "/world\n" +
		"    europe\n" +
		"        france\n" +
		"    usa\n"
	assert.Equal(t, want, out.String())
}

// Guides stay open only under ancestors that still have siblings to come.
func TestTree_GuidesFollowAncestors(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/r")
	mfs.AddFile("a/a1/x", "")
	mfs.AddFile("a/a1/y", "")
	mfs.AddFile("a/a2", "")
	mfs.AddFile("b/b1/z", "")
	mfs.AddFile("c", "")

	var out bytes.Buffer
	require.NoError(t, newTestRenderer(mfs).Tree(&out, "/r"))

	want := strings.Join([]string{
		"/r",
		"├── a",
		"│   ├── a1",
		"│   │   ├── x",
		"│   │   └── y",
		"│   └── a2",
		"├── b",
		"│   └── b1",
		"│       └── z",
		"└── c",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestTree_LastBranchLeavesBlankColumns(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/r")
	mfs.AddFile("only/inner/leaf", "")

	var out bytes.Buffer
	require.NoError(t, newTestRenderer(mfs).Tree(&out, "/r"))

	want := "/r\n" +
		"└── only\n" +
		"    └── inner\n" +
		"        └── leaf\n"
	assert.Equal(t, want, out.String())
}

// Both forms draw the same entries in the same order with the same depth.
func TestFlatAndTree_DepthConsistency(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/r")
	mfs.AddFile("one/two/three/four.txt", "")
	mfs.AddFile("one/sibling", "")
	mfs.AddFile("zeta", "")
	r := newTestRenderer(mfs)

	var flat, tree bytes.Buffer
	require.NoError(t, r.Dir(&flat, "/r"))
	require.NoError(t, r.Tree(&tree, "/r"))

	flatLines := strings.Split(strings.TrimSuffix(flat.String(), "\n"), "\n")
	treeLines := strings.Split(strings.TrimSuffix(tree.String(), "\n"), "\n")
	require.Len(t, treeLines, len(flatLines))
	assert.Equal(t, flatLines[0], treeLines[0])

	for i := 1; i < len(flatLines); i++ {
		name := strings.TrimLeft(flatLines[i], " ")
		depth := (len(flatLines[i]) - len(name)) / len(fileman.IndentUnit)

		prefix, ok := strings.CutSuffix(treeLines[i], name)
		require.True(t, ok, "line %d: %q does not end with %q", i, treeLines[i], name)
		// every column of a tree prefix is 4 runes wide
		assert.Equal(t, depth*4, len([]rune(prefix)), "line %d", i)
	}
}

func TestTree_DeepNesting(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/r")
	parts := make([]string, 40)
	for i := range parts {
		parts[i] = "d"
	}
	mfs.AddDir(filepath.Join(parts...))

	var out bytes.Buffer
	require.NoError(t, newTestRenderer(mfs).Tree(&out, "/r"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 41)
	assert.Equal(t, strings.Repeat("    ", 39)+"└── d", lines[40])
}

func TestRender_RootValidation(t *testing.T) {
	mfs := newWorld()
	mfs.AddFile("notes.txt", "x")
	r := newTestRenderer(mfs)

	tests := []struct {
		name string
		root string
		want error
	}{
		{"missing root", "/world/atlantis", fileman.ErrNotFound},
		{"root is a file", "/world/notes.txt", fileman.ErrList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flat, tree bytes.Buffer
			assert.ErrorIs(t, r.Dir(&flat, tt.root), tt.want)
			assert.ErrorIs(t, r.Tree(&tree, tt.root), tt.want)
			assert.Empty(t, flat.String())
			assert.Empty(t, tree.String())
		})
	}
}

func TestRender_RootNameAsGiven(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("world/usa", "")

	var out bytes.Buffer
	require.NoError(t, newTestRenderer(mfs).Tree(&out, "world/"))
	assert.Equal(t, "world/\n└── usa\n", out.String())
}

func TestRender_UnlistableBranch(t *testing.T) {
	mfs := newWorld()
	mfs.SetUnreadable("europe")

	var out bytes.Buffer
	err := newTestRenderer(mfs).Tree(&out, "/world")

	assert.ErrorIs(t, err, fileman.ErrList)
	assert.Equal(t, "/world\n├── europe\n└── usa\n", out.String())
}

type failingWriter struct {
	budget int
}

var errSinkClosed = errors.New("sink closed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.budget <= 0 {
		return 0, errSinkClosed
	}
	w.budget--
	return len(p), nil
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestRender_SinkFailureAborts(t *testing.T) {
	r := newTestRenderer(newWorld())

	t.Run("root line", func(t *testing.T) {
		err := r.Tree(&failingWriter{budget: 0}, "/world")
		assert.ErrorIs(t, err, errSinkClosed)
		assert.ErrorIs(t, err, fileman.ErrIO)
	})

	t.Run("entry line", func(t *testing.T) {
		w := &failingWriter{budget: 2}
		err := r.Dir(w, "/world")
		assert.ErrorIs(t, err, errSinkClosed)
		var pathErr *fileman.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "/world/europe/france", filepath.ToSlash(pathErr.Path))
	})

	t.Run("short write", func(t *testing.T) {
		err := r.Tree(shortWriter{}, "/world")
		assert.ErrorIs(t, err, fileman.ErrIO)
	})
}

type upperStyler struct{}

func (upperStyler) Style(e fileman.DirEntry) string { return strings.ToUpper(e.Name) }

func TestRender_WithStyler(t *testing.T) {
	var out bytes.Buffer
	err := newTestRenderer(newWorld(), WithStyler(upperStyler{})).Tree(&out, "/world")
	require.NoError(t, err)
	assert.Equal(t, "/world\n├── EUROPE\n│   └── FRANCE\n└── USA\n", out.String())
}

func TestRender_WithNilStylerIsPlain(t *testing.T) {
	var out bytes.Buffer
	err := newTestRenderer(newWorld(), WithStyler(nil)).Dir(&out, "/world")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "    europe\n")
}

func TestColorStyler(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI256)
	s := newColorStyler(r)

	dir := s.Style(fileman.DirEntry{Name: "europe", Kind: fileman.KindDirectory})
	file := s.Style(fileman.DirEntry{Name: "notes.txt", Kind: fileman.KindOther})

	assert.Contains(t, dir, "europe")
	assert.Contains(t, dir, "\x1b[")
	assert.Equal(t, "notes.txt", file)
}

func TestColorStyler_NonTerminalIsPlain(t *testing.T) {
	s := NewColorStyler(&bytes.Buffer{})
	assert.Equal(t, "europe", s.Style(fileman.DirEntry{Name: "europe", Kind: fileman.KindDirectory}))
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(false, os.Stdout))
	assert.False(t, ColorEnabled(true, &bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(true, os.Stdout))
}

func TestRender_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "europe", "france"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "usa"), 0755))

	var out bytes.Buffer
	require.NoError(t, New(nil).Tree(&out, root))
	assert.Equal(t, root+"\n├── europe\n│   └── france\n└── usa\n", out.String())
}

// Any fs.FS can be drawn, for example an embedded asset tree.
func TestRender_FSProvider(t *testing.T) {
	assets := fstest.MapFS{
		"site/index.html":      {Data: []byte("<html>")},
		"site/css/main.css":    {Data: []byte("body{}")},
		"site/img/logo.png":    {Data: []byte{0x89}},
		"site/img/favicon.ico": {Data: []byte{0}},
	}
	efs := filesystem.NewEmbedFileSystem(assets, ".")

	var out bytes.Buffer
	require.NoError(t, New(walker.NewWalkerWithFS(efs, nil)).Tree(&out, "site"))

	want := "site\n" +
		"├── css\n" +
		"│   └── main.css\n" +
		"├── img\n" +
		"│   ├── favicon.ico\n" +
		"│   └── logo.png\n" +
		"└── index.html\n"
	assert.Equal(t, want, out.String())
}

func BenchmarkTree(b *testing.B) {
	mfs := filesystem.NewMemoryFileSystem("/bench")
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			mfs.AddFile(filepath.Join("d"+string(rune('a'+i)), "s"+string(rune('a'+j)), "leaf"), "")
		}
	}
	r := newTestRenderer(mfs)
	var out bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Reset()
		if err := r.Tree(&out, "/bench"); err != nil {
			b.Fatal(err)
		}
	}
}
