// Package files groups the file-facing layers of fileman into sub-packages:
//   - filesystem: provider abstraction with OS, embedded and in-memory implementations
//   - bytestore: offset-based read/write, append and chunked copy
//   - walker: sorted pre-order directory traversal
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fileman/internal/files/bytestore"
//	    "github.com/vvka-141/fileman/internal/files/walker"
//	)
//
//	store := bytestore.NewStore(logger)
//	n, err := store.Copy("disk.img", "backup.img")
//
//	w := walker.NewWalker(logger)
//	err = w.Walk("./world", func(e fileman.DirEntry) error {
//	    fmt.Println(e.Depth, e.Path)
//	    return nil
//	})
//
// Both layers reach the disk only through a filesystem.FileSystemProvider, so
// tests swap in filesystem.NewMemoryFileSystem and inject faults with
// SetUnreadable and LimitWrites.
package files
