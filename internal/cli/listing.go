package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fileman/internal/render"
	"github.com/vvka-141/fileman/pkg/fileman"
)

var dirCmd = &cobra.Command{
	Use:   "dir <root>",
	Short: "Print a flat indented listing of a directory",
	Long: `Dir prints <root> followed by every entry below it, one per line, indented
by four spaces per level. Siblings are sorted by name (byte order) and
symbolic links are listed but never followed.

Subdirectories that cannot be listed are reported on stderr and skipped; the
rest of the tree is still printed and the command exits with code 14.`,
	Args: cobra.ExactArgs(1),
	RunE: runDir,
}

var treeCmd = &cobra.Command{
	Use:   "tree <root>",
	Short: "Print a box-drawn tree of a directory",
	Long: `Tree prints <root> followed by every entry below it joined by box-drawing
connectors:

  world
  ├── europe
  │   └── france
  └── usa

With --color directory names are highlighted, but only when stdout is a
terminal and NO_COLOR is unset, so piped output stays byte-exact.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

type listingFlagValues struct {
	output string
	color  bool
}

var (
	dirFlags  listingFlagValues
	treeFlags listingFlagValues
)

func init() {
	rootCmd.AddCommand(dirCmd, treeCmd)

	dirCmd.Flags().StringVarP(&dirFlags.output, "output", "o", "",
		"Write to a new file instead of stdout (never overwrites)")

	treeCmd.Flags().StringVarP(&treeFlags.output, "output", "o", "",
		"Write to a new file instead of stdout (never overwrites)")
	treeCmd.Flags().BoolVar(&treeFlags.color, "color", false,
		"Highlight directories on terminals\n"+
			"Precedence: --color > $FILEMAN_COLOR > fileman.yaml")
}

type drawFunc func(r *render.Renderer, out io.Writer, root string) error

func runDir(cmd *cobra.Command, args []string) error {
	return runListing(cmd, args[0], dirFlags.output, false, (*render.Renderer).Dir)
}

func runTree(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	color := s.cfg.Color
	if cmd.Flags().Changed("color") {
		color = treeFlags.color
	}
	return drawListing(cmd, s, args[0], treeFlags.output, color, (*render.Renderer).Tree)
}

func runListing(cmd *cobra.Command, root, output string, color bool, draw drawFunc) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return drawListing(cmd, s, root, output, color, draw)
}

// drawListing renders root to stdout or to a newly created output file.
// The root is checked before the output file is created.
func drawListing(cmd *cobra.Command, s *settings, root, output string, color bool, draw drawFunc) (err error) {
	out := cmd.OutOrStdout()
	if output != "" {
		if err := s.walker().CheckRoot(root); err != nil {
			return err
		}
		w, err := s.store().Create(output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = fileman.NewPathError("close", output, fileman.ErrIO, cerr)
			}
		}()
		out = w
	}

	return draw(s.renderer(out, color), out, root)
}
