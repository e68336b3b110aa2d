package fileman

import "io/fs"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitNotFound      = 11 // Required path does not exist
	ExitAlreadyExists = 12 // Path exists where a fresh one was required
	ExitIOError       = 13 // Open failure, short transfer or other I/O error
	ExitListError     = 14 // Directory could not be listed
	ExitVerifyFailed  = 15 // Copy verification mismatch
)

const (
	// DefaultChunkSize is the number of bytes moved per read/write pair by Copy.
	DefaultChunkSize = 1024

	// DefaultCreateMode is the permission given to files created by Write and
	// Copy: read, write and execute for the owner only.
	DefaultCreateMode fs.FileMode = 0o700

	// IndentUnit is the per-depth prefix of the flat listing.
	IndentUnit = "    "
)

// Box-drawing glyphs used by the tree renderer.
const (
	GlyphTee        = "\u251c" // ├
	GlyphHorizontal = "\u2500" // ─
	GlyphVertical   = "\u2502" // │
	GlyphElbow      = "\u2514" // └
)
