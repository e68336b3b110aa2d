package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File is an open file handle.
// *os.File satisfies it. Write returns an error when the handle was not
// opened for writing, and a short Write always returns a non-nil error.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// FileSystemProvider abstracts the filesystem operations fileman needs.
type FileSystemProvider interface {
	// OpenFile opens path with os.OpenFile flag semantics
	// (os.O_RDONLY, os.O_WRONLY, os.O_CREATE, os.O_EXCL, os.O_APPEND, os.O_TRUNC).
	// perm is only used when the file is created.
	OpenFile(path string, flag int, perm fs.FileMode) (File, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the directory entries at the given path.
	// Entries describe the links themselves: a symbolic link to a directory
	// is not reported as a directory. Order is unspecified.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path, following symbolic links.
	Stat(path string) (FileInfo, error)
}
