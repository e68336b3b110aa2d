// Package bytestore implements byte-level file primitives with strict
// existence policies:
//
//   - Read: offset-based read into a window of a caller buffer
//   - Write: create-only; refuses to touch an existing path
//   - Append: append-only; refuses to create a missing path
//   - Copy: chunked copy into a path that must not exist yet
//
// Write and Append are deliberately mutually exclusive on existence so that
// no operation in this package can overwrite existing data.
//
// Every failure is a *fileman.PathError classified with one of the fileman
// sentinel errors (ErrNotFound, ErrAlreadyExists, ErrOpen, ErrShortWrite,
// ErrIO, ErrInvalidArgument). Counts are zero whenever an error is returned.
//
// The store works against a filesystem.FileSystemProvider, so the same code
// runs on the OS filesystem and on the in-memory filesystem used in tests.
package bytestore
