package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"
)

var (
	errIsDirectory   = errors.New("is a directory")
	errNotDirectory  = errors.New("not a directory")
	errBadDescriptor = errors.New("bad file descriptor")
	errInvalidSeek   = errors.New("invalid seek offset")
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is a file or directory stored in a MemoryFileSystem
type memoryNode struct {
	name       string
	isDir      bool
	content    []byte
	mode       fs.FileMode
	modTime    time.Time
	unreadable bool
}

func (n *memoryNode) info() FileInfo {
	mode := n.mode
	if n.isDir {
		mode |= fs.ModeDir
	}
	return &memoryFileInfo{
		name:    n.name,
		size:    int64(len(n.content)),
		mode:    mode,
		modTime: n.modTime,
		isDir:   n.isDir,
	}
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Besides regular file semantics it can inject faults: unreadable
// directories and short writes.
type MemoryFileSystem struct {
	mu         sync.Mutex
	nodes      map[string]*memoryNode // map of absolute path -> node
	root       string                 // root directory path
	writeLimit int                    // max bytes per Write call, 0 = unlimited
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memoryNode),
		root:  root,
	}
	mfs.nodes[root] = &memoryNode{
		name:    path.Base(root),
		isDir:   true,
		mode:    0755,
		modTime: time.Now(),
	}
	mfs.ensureDirectoriesExist(root)

	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent directories
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.nodes[absPath] = &memoryNode{
		name:    path.Base(absPath),
		content: []byte(content),
		mode:    0644,
		modTime: modTime,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory, creating parent directories
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.nodes[absPath]; !exists {
		mfs.nodes[absPath] = &memoryNode{
			name:    path.Base(absPath),
			isDir:   true,
			mode:    0755,
			modTime: time.Now(),
		}
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetUnreadable makes ReadDir on the directory fail with fs.ErrPermission
func (mfs *MemoryFileSystem) SetUnreadable(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if node, exists := mfs.nodes[mfs.resolve(dirPath)]; exists {
		node.unreadable = true
	}
}

// LimitWrites caps every subsequent Write call at n bytes. A Write asked to
// transfer more stores the first n bytes and returns io.ErrShortWrite.
// n <= 0 removes the limit.
func (mfs *MemoryFileSystem) LimitWrites(n int) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.writeLimit = n
}

// resolve maps a caller path to the absolute virtual path.
// Must be called with mu held or before the filesystem is shared.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.nodes[dir]; exists {
		return
	}

	mfs.nodes[dir] = &memoryNode{
		name:    path.Base(dir),
		isDir:   true,
		mode:    0755,
		modTime: time.Now(),
	}
	mfs.ensureDirectoriesExist(dir)
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string, flag int, perm fs.FileMode) (File, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	node, exists := mfs.nodes[absPath]

	switch {
	case exists && flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0:
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrExist}
	case exists && node.isDir:
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: errIsDirectory}
	case !exists && flag&os.O_CREATE == 0:
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	case !exists:
		parent, ok := mfs.nodes[path.Dir(absPath)]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
		}
		if !parent.isDir {
			return nil, &fs.PathError{Op: "open", Path: filePath, Err: errNotDirectory}
		}
		node = &memoryNode{
			name:    path.Base(absPath),
			mode:    perm.Perm(),
			modTime: time.Now(),
		}
		mfs.nodes[absPath] = node
	}

	handle := &memoryHandle{fs: mfs, node: node, name: filePath, flag: flag}
	if flag&os.O_TRUNC != 0 && handle.writable() {
		node.content = nil
	}
	return handle, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	node, exists := mfs.nodes[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDirectory}
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir.
// Entries are returned in map order; callers needing an order must sort.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	node, exists := mfs.nodes[absPath]
	switch {
	case !exists:
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	case !node.isDir:
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: errNotDirectory}
	case node.unreadable:
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrPermission}
	}

	var result []FileInfo
	for p, child := range mfs.nodes {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, child.info())
		}
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	node, exists := mfs.nodes[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return node.info(), nil
}

// memoryHandle implements File for a MemoryFileSystem node
type memoryHandle struct {
	fs     *MemoryFileSystem
	node   *memoryNode
	name   string
	flag   int
	offset int64
	closed bool
}

func (h *memoryHandle) accessMode() int {
	return h.flag & (os.O_RDONLY | os.O_WRONLY | os.O_RDWR)
}

func (h *memoryHandle) readable() bool { return h.accessMode() != os.O_WRONLY }
func (h *memoryHandle) writable() bool { return h.accessMode() != os.O_RDONLY }

func (h *memoryHandle) Read(p []byte) (int, error) {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if h.closed {
		return 0, &fs.PathError{Op: "read", Path: h.name, Err: fs.ErrClosed}
	}
	if !h.readable() {
		return 0, &fs.PathError{Op: "read", Path: h.name, Err: errBadDescriptor}
	}
	if len(p) == 0 {
		return 0, nil
	}
	if h.offset >= int64(len(h.node.content)) {
		return 0, io.EOF
	}

	n := copy(p, h.node.content[h.offset:])
	h.offset += int64(n)
	return n, nil
}

func (h *memoryHandle) Write(p []byte) (int, error) {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if h.closed {
		return 0, &fs.PathError{Op: "write", Path: h.name, Err: fs.ErrClosed}
	}
	if !h.writable() {
		return 0, &fs.PathError{Op: "write", Path: h.name, Err: errBadDescriptor}
	}
	if h.flag&os.O_APPEND != 0 {
		h.offset = int64(len(h.node.content))
	}

	n := len(p)
	if h.fs.writeLimit > 0 && n > h.fs.writeLimit {
		n = h.fs.writeLimit
	}

	end := h.offset + int64(n)
	if end > int64(len(h.node.content)) {
		// Writing past EOF leaves a zero-filled hole, like a sparse file.
		grown := make([]byte, end)
		copy(grown, h.node.content)
		h.node.content = grown
	}
	copy(h.node.content[h.offset:end], p[:n])
	h.offset = end
	h.node.modTime = time.Now()

	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (h *memoryHandle) Seek(offset int64, whence int) (int64, error) {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if h.closed {
		return 0, &fs.PathError{Op: "seek", Path: h.name, Err: fs.ErrClosed}
	}

	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = h.offset
	case io.SeekEnd:
		base = int64(len(h.node.content))
	default:
		return 0, &fs.PathError{Op: "seek", Path: h.name, Err: errInvalidSeek}
	}

	next := base + offset
	if next < 0 {
		return 0, &fs.PathError{Op: "seek", Path: h.name, Err: errInvalidSeek}
	}
	h.offset = next
	return next, nil
}

func (h *memoryHandle) Close() error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if h.closed {
		return &fs.PathError{Op: "close", Path: h.name, Err: fs.ErrClosed}
	}
	h.closed = true
	return nil
}
