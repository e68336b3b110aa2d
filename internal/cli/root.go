package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fileman",
	Short: "Byte-level file primitives and directory renderers",
	Long: `fileman reads and writes exact byte regions of files, appends to and copies
files without ever clobbering existing data, and draws directory subtrees as a
flat indented listing or a box-drawn tree.

Write, copy and -o outputs only ever create new files. Append only ever
extends existing ones.

Configuration precedence: flags > FILEMAN_* environment (.env honoured) >
fileman.yaml in --config directory > defaults.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found
  12 - Path already exists
  13 - I/O error (open failure, short read or write)
  14 - Directory could not be listed
  15 - Copy verification failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fileman")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".",
		"Directory containing "+configFileHint)
	rootCmd.PersistentFlags().Int("chunk-size", 0,
		"Bytes moved per read/write pair during copy\n"+
			"Precedence: --chunk-size > $FILEMAN_CHUNK_SIZE > fileman.yaml > 1024")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
