package bytestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vvka-141/fileman/internal/files/filesystem"
	"github.com/vvka-141/fileman/internal/logging"
	"github.com/vvka-141/fileman/pkg/fileman"
)

// Store performs byte-level file operations through a filesystem provider.
// Store holds no per-call state and is safe for concurrent use as long as
// the provider is.
type Store struct {
	fsProvider filesystem.FileSystemProvider
	logger     fileman.Logger
	chunkSize  int
	createMode fs.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithChunkSize sets the number of bytes Copy moves per read/write pair.
// Non-positive sizes are ignored.
func WithChunkSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithCreateMode sets the permission bits of files created by Write and Copy.
func WithCreateMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.createMode = mode.Perm()
	}
}

// NewStore creates a Store on the OS filesystem.
// A nil logger discards all messages.
func NewStore(logger fileman.Logger, opts ...Option) *Store {
	return NewStoreWithFS(filesystem.NewOSFileSystem(), logger, opts...)
}

// NewStoreWithFS creates a Store with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewStoreWithFS(fsProvider filesystem.FileSystemProvider, logger fileman.Logger, opts ...Option) *Store {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	s := &Store{
		fsProvider: fsProvider,
		logger:     logging.OrNull(logger),
		chunkSize:  fileman.DefaultChunkSize,
		createMode: fileman.DefaultCreateMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the copy chunk size in bytes.
func (s *Store) ChunkSize() int { return s.chunkSize }

// Read reads up to size bytes from path, starting fileOffset bytes from the
// beginning of the file, into buf[bufOffset:bufOffset+size].
//
// The returned count is smaller than size only when end of file was reached;
// reading at or past end of file returns 0 and no error.
func (s *Store) Read(path string, fileOffset int64, buf []byte, bufOffset, size int) (int, error) {
	if err := checkWindow("read", path, fileOffset, len(buf), bufOffset, size); err != nil {
		return 0, err
	}

	f, err := s.fsProvider.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return 0, classifyOpen("read", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(fileOffset, io.SeekStart); err != nil {
		return 0, fileman.NewPathError("read", path, fileman.ErrIO, err)
	}

	n, err := io.ReadFull(f, buf[bufOffset:bufOffset+size])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fileman.NewPathError("read", path, fileman.ErrIO, err)
	}

	s.logger.Verbose("read %d/%d bytes from %s at offset %d", n, size, path, fileOffset)
	return n, nil
}

// Write creates path and writes exactly size bytes from
// buf[bufOffset:bufOffset+size] starting fileOffset bytes into the new file.
// Bytes before fileOffset read back as zeros.
//
// Write never modifies an existing file: if path exists it fails with
// fileman.ErrAlreadyExists. The existence check and the creation are a
// single exclusive open. Writing fewer than size bytes fails with
// fileman.ErrShortWrite.
func (s *Store) Write(path string, fileOffset int64, buf []byte, bufOffset, size int) (n int, err error) {
	if err := checkWindow("write", path, fileOffset, len(buf), bufOffset, size); err != nil {
		return 0, err
	}

	f, err := s.fsProvider.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.createMode)
	if err != nil {
		return 0, classifyCreate("write", path, err)
	}
	defer closeInto(f, "write", path, &n, &err)

	if _, err := f.Seek(fileOffset, io.SeekStart); err != nil {
		return 0, fileman.NewPathError("write", path, fileman.ErrIO, err)
	}

	if err := writeExactly(f, "write", path, buf[bufOffset:bufOffset+size]); err != nil {
		return 0, err
	}

	s.logger.Verbose("wrote %d bytes to new file %s at offset %d", size, path, fileOffset)
	return size, nil
}

// Create exclusively creates path with the configured creation mode and
// returns it open for writing. It shares Write's no-clobber policy: an
// existing path fails with fileman.ErrAlreadyExists.
func (s *Store) Create(path string) (io.WriteCloser, error) {
	f, err := s.fsProvider.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.createMode)
	if err != nil {
		return nil, classifyCreate("create", path, err)
	}
	s.logger.Verbose("created %s", path)
	return f, nil
}

// Append writes exactly size bytes from buf[:size] at the end of path.
//
// Append never creates a file: if path does not exist it fails with
// fileman.ErrNotFound and nothing is created. Writing fewer than size
// bytes fails with fileman.ErrShortWrite.
func (s *Store) Append(path string, buf []byte, size int) (n int, err error) {
	if err := checkWindow("append", path, 0, len(buf), 0, size); err != nil {
		return 0, err
	}

	f, err := s.fsProvider.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return 0, classifyOpen("append", path, err)
	}
	defer closeInto(f, "append", path, &n, &err)

	if err := writeExactly(f, "append", path, buf[:size]); err != nil {
		return 0, err
	}

	s.logger.Verbose("appended %d bytes to %s", size, path)
	return size, nil
}

// Copy creates destPath with the content of srcPath and returns the number
// of bytes copied.
//
// srcPath must exist (fileman.ErrNotFound otherwise) and destPath must not
// (fileman.ErrAlreadyExists otherwise); the source is checked first. The
// content is streamed in chunks of ChunkSize bytes until a read returns
// fewer bytes than the chunk size, so files larger than memory are fine.
// A source whose size is a multiple of the chunk size ends with an empty
// read, which is a successful no-op. A partially written chunk fails with
// fileman.ErrShortWrite.
func (s *Store) Copy(srcPath, destPath string) (total int64, err error) {
	src, err := s.fsProvider.OpenFile(srcPath, os.O_RDONLY, 0)
	if err != nil {
		return 0, classifyOpen("copy", srcPath, err)
	}
	defer src.Close()

	dst, err := s.fsProvider.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.createMode)
	if err != nil {
		return 0, classifyCreate("copy", destPath, err)
	}
	defer func() {
		var n int
		closeInto(dst, "copy", destPath, &n, &err)
		if err != nil {
			total = 0
		}
	}()

	chunk := make([]byte, s.chunkSize)
	for {
		n, readErr := io.ReadFull(src, chunk)
		if readErr != nil && !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
			return 0, fileman.NewPathError("copy", srcPath, fileman.ErrIO, readErr)
		}

		if n > 0 {
			if err := writeExactly(dst, "copy", destPath, chunk[:n]); err != nil {
				return 0, err
			}
			total += int64(n)
		}

		if n < len(chunk) {
			break
		}
	}

	s.logger.Verbose("copied %d bytes from %s to %s in %d-byte chunks", total, srcPath, destPath, s.chunkSize)
	return total, nil
}

// writeExactly writes all of p or reports why it could not.
func writeExactly(w io.Writer, op, path string, p []byte) error {
	n, err := w.Write(p)
	switch {
	case n < len(p):
		if err == nil {
			err = io.ErrShortWrite
		}
		return fileman.NewPathError(op, path, fileman.ErrShortWrite,
			fmt.Errorf("wrote %d of %d bytes: %w", n, len(p), err))
	case err != nil:
		return fileman.NewPathError(op, path, fileman.ErrIO, err)
	}
	return nil
}

// closeInto closes f and, when no earlier error occurred, reports a close
// failure through errp and zeroes the count.
func closeInto(f io.Closer, op, path string, n *int, errp *error) {
	if cerr := f.Close(); cerr != nil && *errp == nil {
		*errp = fileman.NewPathError(op, path, fileman.ErrIO, cerr)
		*n = 0
	}
}

// checkWindow validates offsets and that the buffer window lies within the buffer.
func checkWindow(op, path string, fileOffset int64, bufLen, bufOffset, size int) error {
	switch {
	case fileOffset < 0:
		return fileman.NewPathError(op, path, fileman.ErrInvalidArgument,
			fmt.Errorf("negative file offset %d", fileOffset))
	case bufOffset < 0 || size < 0:
		return fileman.NewPathError(op, path, fileman.ErrInvalidArgument,
			fmt.Errorf("negative buffer offset %d or size %d", bufOffset, size))
	case bufOffset > bufLen || size > bufLen-bufOffset:
		return fileman.NewPathError(op, path, fileman.ErrInvalidArgument,
			fmt.Errorf("window [%d:%d] exceeds buffer of %d bytes", bufOffset, bufOffset+size, bufLen))
	}
	return nil
}

// classifyOpen maps a failure to open an existing file.
func classifyOpen(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fileman.NewPathError(op, path, fileman.ErrNotFound, err)
	}
	return fileman.NewPathError(op, path, fileman.ErrOpen, err)
}

// classifyCreate maps a failure to exclusively create a file.
func classifyCreate(op, path string, err error) error {
	if errors.Is(err, fs.ErrExist) {
		return fileman.NewPathError(op, path, fileman.ErrAlreadyExists, err)
	}
	return fileman.NewPathError(op, path, fileman.ErrOpen, err)
}

// Verify Store implements the interface at compile time
var _ fileman.ByteStore = (*Store)(nil)
