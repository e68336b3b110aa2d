package fileman

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure taxonomy shared by every fileman operation.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	n, err := store.Write(path, 0, buf, 0, len(buf))
//	if errors.Is(err, fileman.ErrAlreadyExists) {
//	    // Refuse to clobber
//	}
var (
	// ErrNotFound indicates a path was absent when existence was required.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a path was present when absence was required.
	ErrAlreadyExists = errors.New("already exists")

	// ErrOpen indicates a file could not be opened for a reason other than absence.
	ErrOpen = errors.New("open failed")

	// ErrShortWrite indicates fewer bytes were written than requested.
	ErrShortWrite = errors.New("short write")

	// ErrShortRead indicates fewer bytes were read than the caller required.
	ErrShortRead = errors.New("short read")

	// ErrList indicates a directory could not be enumerated.
	ErrList = errors.New("directory listing failed")

	// ErrIO indicates a seek, read, write or close failure that is not a short transfer.
	ErrIO = errors.New("i/o error")

	// ErrInvalidArgument indicates offsets, sizes or buffer windows are out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrVerifyFailed indicates a copied file does not match its source.
	ErrVerifyFailed = errors.New("verification failed")
)

// PathError records a failed operation on a path together with its
// classification. Kind is one of the sentinel errors above; Err is the
// underlying cause and may be nil.
//
// errors.Is matches both Kind and Err, so a missing file satisfies
// errors.Is(err, ErrNotFound) as well as errors.Is(err, fs.ErrNotExist).
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	msg := e.Op + " " + e.Path + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewPathError builds a PathError. A nil kind is treated as ErrIO.
func NewPathError(op, path string, kind, err error) *PathError {
	if kind == nil {
		kind = ErrIO
	}
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

// usageErrorPatterns are fragments of the messages cobra and pflag produce
// for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrList):
		return ExitListError
	case errors.Is(err, ErrVerifyFailed):
		return ExitVerifyFailed
	case errors.Is(err, ErrOpen),
		errors.Is(err, ErrShortWrite),
		errors.Is(err, ErrShortRead),
		errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsageError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
