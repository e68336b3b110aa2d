package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

var errNotSeekable = errors.New("file does not support seeking")

// embedHandle implements File over an fs.File. Writes are always refused.
type embedHandle struct {
	file fs.File
	name string
}

func (h *embedHandle) Read(p []byte) (int, error) { return h.file.Read(p) }

func (h *embedHandle) Write(p []byte) (int, error) {
	return 0, &fs.PathError{Op: "write", Path: h.name, Err: fs.ErrPermission}
}

func (h *embedHandle) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := h.file.(io.Seeker)
	if !ok {
		return 0, &fs.PathError{Op: "seek", Path: h.name, Err: errNotSeekable}
	}
	return seeker.Seek(offset, whence)
}

func (h *embedHandle) Close() error { return h.file.Close() }

// EmbedFileSystem implements a read-only FileSystemProvider over an fs.FS,
// typically an embed.FS or an fstest.MapFS.
type EmbedFileSystem struct {
	fsys fs.FS
	root string // root path within fsys (always uses forward slashes)
}

// NewEmbedFileSystem creates a new filesystem provider wrapping an fs.FS.
// The root parameter specifies the subdirectory within fsys to treat as the root.
// All paths are normalized to use forward slashes for consistency with io/fs.
func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		fsys: fsys,
		root: path.Clean(root),
	}
}

// resolve maps a caller path to a valid fs.FS path.
// Relative paths are joined with root; absolute paths are taken from the top of fsys.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	switch {
	case p == "" || p == ".":
		return efs.root
	case path.IsAbs(p):
		p = strings.TrimPrefix(path.Clean(p), "/")
		if p == "" {
			return "."
		}
		return p
	default:
		return path.Join(efs.root, p)
	}
}

// OpenFile implements FileSystemProvider.OpenFile. Only read-only opens succeed.
func (efs *EmbedFileSystem) OpenFile(filePath string, flag int, perm fs.FileMode) (File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_APPEND|os.O_TRUNC) != 0 {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrPermission}
	}

	f, err := efs.fsys.Open(efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return &embedHandle{file: f, name: filePath}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(efs.fsys, efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (efs *EmbedFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := fs.ReadDir(efs.fsys, efs.resolve(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.fsys, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
