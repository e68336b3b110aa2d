package fileman

// EntryKind classifies a directory entry.
type EntryKind int

const (
	// KindOther is any entry that is not a directory: regular files,
	// symbolic links (never followed), devices, sockets and pipes.
	KindOther EntryKind = iota
	// KindDirectory is a directory the walker descends into.
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "other"
}

// DirEntry describes one entry visited during a traversal.
// Values are transient and only valid for the duration of the visit call.
type DirEntry struct {
	// Name is the entry's base name. Never "." or "..".
	Name string

	// Path is the traversal root joined with every ancestor name and Name.
	Path string

	// Kind tells whether the walker will descend into the entry.
	Kind EntryKind

	// Depth is the distance from the traversal root. The root's children are at depth 1.
	Depth int

	// Last reports whether no sibling follows this entry in visiting order.
	Last bool
}

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool { return e.Kind == KindDirectory }

// VisitFunc is called once per entry in pre-order.
// Returning a non-nil error stops the traversal and the error is returned
// to the caller of the walk unchanged.
type VisitFunc func(entry DirEntry) error

// ByteStore defines the byte-level file primitives.
// Counts are only meaningful when the returned error is nil.
type ByteStore interface {
	// Read reads up to size bytes from path at fileOffset into buf[bufOffset:].
	// A count below size means end of file was reached.
	Read(path string, fileOffset int64, buf []byte, bufOffset, size int) (int, error)

	// Write creates path, which must not exist, and writes exactly size bytes
	// from buf[bufOffset:] starting at fileOffset.
	Write(path string, fileOffset int64, buf []byte, bufOffset, size int) (int, error)

	// Append writes exactly size bytes from buf at the end of path, which must exist.
	Append(path string, buf []byte, size int) (int, error)

	// Copy creates destPath, which must not exist, with the content of srcPath.
	Copy(srcPath, destPath string) (int64, error)
}

// DirectoryWalker visits every entry below a root directory in pre-order,
// siblings sorted by name.
type DirectoryWalker interface {
	Walk(root string, fn VisitFunc) error
}
