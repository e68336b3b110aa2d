package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fileman/internal/checksum"
	"github.com/vvka-141/fileman/internal/files/filesystem"
	"github.com/vvka-141/fileman/pkg/fileman"
)

var copyCmd = &cobra.Command{
	Use:   "copy <src> <dest>",
	Short: "Copy a file to a new path",
	Long: `Copy creates <dest> with the content of <src>, streaming it in chunk-size
pieces so files larger than memory are fine.

<src> must exist (exit code 11) and <dest> must not (exit code 12); the source
is checked first. With --verify both files are hashed with SHA-256 afterwards
and a mismatch fails with exit code 15.

Examples:
  fileman copy disk.img backup.img --verify
  fileman copy big.log big.log.1 --chunk-size 65536`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

type copyFlagValues struct {
	verify bool
}

var copyFlags copyFlagValues

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().BoolVar(&copyFlags.verify, "verify", false,
		"Compare SHA-256 digests of source and destination after copying")
}

func runCopy(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	src, dest := args[0], args[1]

	n, err := s.store().Copy(src, dest)
	if err != nil {
		return err
	}

	if copyFlags.verify {
		sum, err := verifyCopy(filesystem.NewOSFileSystem(), checksum.New(), src, dest)
		if err != nil {
			return err
		}
		s.logger.Verbose("verified sha256 %s", sum)
	}

	s.logger.Info("copied %d bytes from %s to %s", n, src, dest)
	return nil
}

// verifyCopy hashes src and dest and returns the shared digest, or
// fileman.ErrVerifyFailed when they differ.
func verifyCopy(fsys filesystem.FileSystemProvider, calc checksum.Calculator, src, dest string) (string, error) {
	want, err := calc.CalculateFile(fsys, src)
	if err != nil {
		return "", fileman.NewPathError("verify", src, fileman.ErrIO, err)
	}
	got, err := calc.CalculateFile(fsys, dest)
	if err != nil {
		return "", fileman.NewPathError("verify", dest, fileman.ErrIO, err)
	}
	if got != want {
		return "", fileman.NewPathError("verify", dest, fileman.ErrVerifyFailed,
			fmt.Errorf("sha256 %s, source has %s", got, want))
	}
	return got, nil
}
