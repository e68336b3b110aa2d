// Package checksum provides SHA-256 content digests for copy verification.
//
// Digests are computed either over an in-memory buffer or by streaming a
// file through a filesystem.FileSystemProvider in bounded chunks, so files
// of any size can be verified without loading them into memory.
//
// # Example Usage
//
//	calculator := checksum.New()
//	src, err := calculator.CalculateFile(fsys, "in.bin")
//	dst, err := calculator.CalculateFile(fsys, "out.bin")
//	if src != dst {
//	    // copy is corrupt
//	}
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
