package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fileman/pkg/fileman"
)

var readCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Print a byte region of a file",
	Long: `Read prints the bytes of <path> starting at --offset.

Without --size the file is read to its end in chunk-size pieces. With --size at
most that many bytes are printed; fewer are printed when the file ends first,
unless --exact turns that into an error.

Examples:
  fileman read notes.txt
  fileman read image.bin --offset 512 --size 64 --exact | xxd`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

var writeCmd = &cobra.Command{
	Use:   "write <path>",
	Short: "Create a new file from --data or stdin",
	Long: `Write creates <path> and writes the input at --offset. Bytes before the
offset read back as zeros.

Write never touches an existing file: if <path> exists the command fails with
exit code 12 and the file is left unchanged.

Examples:
  fileman write greeting.txt --data "hello"
  cat header.bin | fileman write patched.bin --offset 128`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

var appendCmd = &cobra.Command{
	Use:   "append <path>",
	Short: "Append --data or stdin to an existing file",
	Long: `Append writes the input at the end of <path>.

Append never creates a file: if <path> does not exist the command fails with
exit code 11 and nothing is created.`,
	Args: cobra.ExactArgs(1),
	RunE: runAppend,
}

type readFlagValues struct {
	offset int64
	size   int
	exact  bool
}

type writeFlagValues struct {
	offset int64
	data   string
}

var (
	readFlags   readFlagValues
	writeFlags  writeFlagValues
	appendFlags writeFlagValues
)

func init() {
	rootCmd.AddCommand(readCmd, writeCmd, appendCmd)

	readCmd.Flags().Int64Var(&readFlags.offset, "offset", 0, "Byte offset from the start of the file")
	readCmd.Flags().IntVar(&readFlags.size, "size", 0, "Maximum number of bytes to read (default: to end of file)")
	readCmd.Flags().BoolVar(&readFlags.exact, "exact", false, "Fail when fewer than --size bytes are available")

	writeCmd.Flags().Int64Var(&writeFlags.offset, "offset", 0, "Byte offset in the new file")
	writeCmd.Flags().StringVar(&writeFlags.data, "data", "", "Data to write (default: read stdin)")

	appendCmd.Flags().StringVar(&appendFlags.data, "data", "", "Data to append (default: read stdin)")
}

func runRead(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	store := s.store()
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("size") {
		buf := make([]byte, max(readFlags.size, 0))
		n, err := store.Read(path, readFlags.offset, buf, 0, readFlags.size)
		if err != nil {
			return err
		}
		if readFlags.exact && n < readFlags.size {
			return fileman.NewPathError("read", path, fileman.ErrShortRead,
				fmt.Errorf("got %d of %d bytes", n, readFlags.size))
		}
		return writeOutput(out, path, buf[:n])
	}

	buf := make([]byte, store.ChunkSize())
	offset := readFlags.offset
	for {
		n, err := store.Read(path, offset, buf, 0, len(buf))
		if err != nil {
			return err
		}
		if err := writeOutput(out, path, buf[:n]); err != nil {
			return err
		}
		offset += int64(n)
		if n < len(buf) {
			return nil
		}
	}
}

func runWrite(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, writeFlags.data)
	if err != nil {
		return err
	}

	n, err := s.store().Write(args[0], writeFlags.offset, data, 0, len(data))
	if err != nil {
		return err
	}
	s.logger.Info("wrote %d bytes to %s", n, args[0])
	return nil
}

func runAppend(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, appendFlags.data)
	if err != nil {
		return err
	}

	n, err := s.store().Append(args[0], data, len(data))
	if err != nil {
		return err
	}
	s.logger.Info("appended %d bytes to %s", n, args[0])
	return nil
}

// readInput returns --data when it was given, otherwise all of stdin.
func readInput(cmd *cobra.Command, data string) ([]byte, error) {
	if cmd.Flags().Changed("data") {
		return []byte(data), nil
	}
	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return in, nil
}

func writeOutput(out io.Writer, path string, p []byte) error {
	if _, err := out.Write(p); err != nil {
		return fileman.NewPathError("output", path, fileman.ErrIO, err)
	}
	return nil
}
