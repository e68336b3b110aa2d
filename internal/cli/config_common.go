package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fileman/internal/config"
	"github.com/vvka-141/fileman/internal/files/bytestore"
	"github.com/vvka-141/fileman/internal/files/walker"
	"github.com/vvka-141/fileman/internal/logging"
	"github.com/vvka-141/fileman/internal/render"
	"github.com/vvka-141/fileman/pkg/fileman"
)

const configFileHint = config.ConfigFileName

// settings is the configuration resolved for one command invocation.
type settings struct {
	cfg    *config.Config
	mode   fs.FileMode
	logger fileman.Logger
}

// loadSettings loads godotenv and fileman.yaml, then applies the
// environment and flag overrides in that order.
// A missing fileman.yaml is not an error.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	_ = godotenv.Load()

	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = config.Default()
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := cfg.FileMode()
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Verbose("config: chunk_size=%d create_mode=%04o color=%t", cfg.ChunkSize, uint32(mode), cfg.Color)

	return &settings{cfg: cfg, mode: mode, logger: logger}, nil
}

// applyFlagOverrides copies explicitly set global flags into cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = getVerboseFlag(cmd)
	}
	if cmd.Flags().Changed("chunk-size") {
		n, err := cmd.Flags().GetInt("chunk-size")
		if err != nil {
			return err
		}
		cfg.ChunkSize = n
	}
	return nil
}

func (s *settings) store() *bytestore.Store {
	return bytestore.NewStore(s.logger,
		bytestore.WithChunkSize(s.cfg.ChunkSize),
		bytestore.WithCreateMode(s.mode),
	)
}

func (s *settings) walker() *walker.Walker {
	return walker.NewWalker(s.logger)
}

// renderer builds a renderer for out, styled when colour is both requested
// and possible on out.
func (s *settings) renderer(out io.Writer, colorRequested bool) *render.Renderer {
	var opts []render.Option
	if render.ColorEnabled(colorRequested, out) {
		opts = append(opts, render.WithStyler(render.NewColorStyler(out)))
	}
	return render.New(s.walker(), opts...)
}
