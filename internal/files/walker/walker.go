package walker

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/vvka-141/fileman/internal/files/filesystem"
	"github.com/vvka-141/fileman/internal/logging"
	"github.com/vvka-141/fileman/pkg/fileman"
)

var errNotDirectory = errors.New("not a directory")

// Walker traverses directory trees in pre-order.
// Walker keeps no state between calls and is safe for concurrent and
// reentrant use as long as the provided fsProvider is.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	logger     fileman.Logger
}

// NewWalker creates a walker over the OS filesystem.
// A nil logger discards all messages.
func NewWalker(logger fileman.Logger) *Walker {
	return NewWalkerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewWalkerWithFS creates a walker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWalkerWithFS(fsProvider filesystem.FileSystemProvider, logger fileman.Logger) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Walker{
		fsProvider: fsProvider,
		logger:     logging.OrNull(logger),
	}
}

// CheckRoot verifies that root exists and is a directory.
// A missing root is fileman.ErrNotFound; anything else that is not a
// directory is fileman.ErrList.
func (w *Walker) CheckRoot(root string) error {
	info, err := w.fsProvider.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileman.NewPathError("walk", root, fileman.ErrNotFound, err)
		}
		return fileman.NewPathError("walk", root, fileman.ErrList, err)
	}
	if !info.IsDir() {
		return fileman.NewPathError("walk", root, fileman.ErrList, errNotDirectory)
	}
	return nil
}

// Walk visits every entry below root in pre-order, calling fn once per entry.
// The root itself is not visited.
//
// Failing to check or list the root is returned immediately. A visit error
// stops the walk and is returned unchanged. Subdirectories that cannot be
// listed are skipped; their errors (each matching fileman.ErrList) are
// joined and returned after the rest of the tree has been visited.
func (w *Walker) Walk(root string, fn fileman.VisitFunc) error {
	if err := w.CheckRoot(root); err != nil {
		return err
	}

	entries, err := w.list(root)
	if err != nil {
		return err
	}

	var branchErrs []error
	if err := w.walkDir(root, entries, 1, fn, &branchErrs); err != nil {
		return err
	}
	return errors.Join(branchErrs...)
}

// walkDir visits the already-listed entries of dirPath at depth and descends
// into subdirectories. It only returns visit errors; listing failures below
// dirPath are appended to branchErrs.
func (w *Walker) walkDir(dirPath string, entries []fs.FileInfo, depth int, fn fileman.VisitFunc, branchErrs *[]error) error {
	for i, info := range entries {
		entry := fileman.DirEntry{
			Name:  info.Name(),
			Path:  filepath.Join(dirPath, info.Name()),
			Kind:  kindOf(info),
			Depth: depth,
			Last:  i == len(entries)-1,
		}

		if err := fn(entry); err != nil {
			return err
		}

		if !entry.IsDir() {
			continue
		}

		children, err := w.list(entry.Path)
		if err != nil {
			w.logger.Error("skipping %s: %v", entry.Path, err)
			*branchErrs = append(*branchErrs, err)
			continue
		}

		if err := w.walkDir(entry.Path, children, depth+1, fn, branchErrs); err != nil {
			return err
		}
	}
	return nil
}

// list returns the entries of dirPath without "." and "..", sorted by name.
func (w *Walker) list(dirPath string) ([]fs.FileInfo, error) {
	infos, err := w.fsProvider.ReadDir(dirPath)
	if err != nil {
		return nil, fileman.NewPathError("list", dirPath, fileman.ErrList, err)
	}

	entries := make([]fs.FileInfo, 0, len(infos))
	for _, info := range infos {
		if name := info.Name(); name == "." || name == ".." {
			continue
		}
		entries = append(entries, info)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	w.logger.Verbose("listed %s: %d entries", dirPath, len(entries))
	return entries, nil
}

func kindOf(info fs.FileInfo) fileman.EntryKind {
	if info.IsDir() {
		return fileman.KindDirectory
	}
	return fileman.KindOther
}

// Verify Walker implements the interface at compile time
var _ fileman.DirectoryWalker = (*Walker)(nil)
