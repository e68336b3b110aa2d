// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file handle and directory operations,
// enabling testability through in-memory implementations while maintaining
// compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: opens files, lists directories and stats paths
//   - File: an open handle supporting Read, Write, Seek and Close
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the os package
//   - MemoryFileSystem: In-memory implementation with fault injection for tests
//   - EmbedFileSystem: Read-only implementation over any fs.FS (embed.FS, fstest.MapFS)
//
// Errors returned by every implementation wrap the io/fs sentinels
// (fs.ErrNotExist, fs.ErrExist, fs.ErrPermission) so callers can classify
// them with errors.Is regardless of the backing store.
package filesystem
