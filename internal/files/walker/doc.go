// Package walker provides depth-first, pre-order traversal of a directory
// subtree.
//
// The walker is responsible for:
//   - Listing each directory by its full joined path (the process working
//     directory is never consulted or changed)
//   - Filtering the "." and ".." pseudo-entries
//   - Visiting siblings in stable byte-wise name order
//   - Reporting each entry's depth and whether it is the last of its siblings
//   - Descending into a directory right after visiting it
//
// Symbolic links are classified by the link itself and never followed, so
// link cycles cannot cause unbounded descent.
//
// A subdirectory that cannot be listed aborts only its own subtree: the
// failure is logged and collected, and traversal continues with the next
// sibling. All collected failures are returned together once the walk
// completes.
//
// The walker is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package walker
