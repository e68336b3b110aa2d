package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fileman/pkg/fileman"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the tunables shared by every fileman command.
type Config struct {
	// ChunkSize is the number of bytes moved per read/write pair during copy.
	ChunkSize int `yaml:"chunk_size"`

	// CreateMode is the octal permission given to files created by write and
	// copy, e.g. "0700".
	CreateMode string `yaml:"create_mode"`

	// Color enables coloured tree output on terminals.
	Color bool `yaml:"color"`

	// Verbose enables diagnostic logging.
	Verbose bool `yaml:"verbose"`
}

const ConfigFileName = "fileman.yaml"

// Environment variables overriding the config file.
const (
	EnvChunkSize  = "FILEMAN_CHUNK_SIZE"
	EnvCreateMode = "FILEMAN_CREATE_MODE"
	EnvColor      = "FILEMAN_COLOR"
	EnvVerbose    = "FILEMAN_VERBOSE"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		ChunkSize:  fileman.DefaultChunkSize,
		CreateMode: fmt.Sprintf("%04o", uint32(fileman.DefaultCreateMode)),
	}
}

// Load reads ConfigFileName from dir on top of Default.
// Keys absent from the file keep their default values.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fileman.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the FILEMAN_* variables visible through
// lookup (usually os.LookupEnv). Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvChunkSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", fileman.ErrInvalidConfig, EnvChunkSize, v)
		}
		c.ChunkSize = n
	}
	if v, ok := lookup(EnvCreateMode); ok && v != "" {
		c.CreateMode = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fileman.ErrInvalidConfig, EnvColor, v)
		}
		c.Color = b
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fileman.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Verbose = b
	}
	return nil
}

// Validate reports the first invalid field as fileman.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %d", fileman.ErrInvalidConfig, c.ChunkSize)
	}
	if _, err := c.FileMode(); err != nil {
		return err
	}
	return nil
}

// FileMode parses CreateMode. An empty CreateMode means
// fileman.DefaultCreateMode.
func (c *Config) FileMode() (fs.FileMode, error) {
	if c.CreateMode == "" {
		return fileman.DefaultCreateMode, nil
	}
	mode, err := strconv.ParseUint(c.CreateMode, 8, 32)
	if err != nil || mode > 0o777 {
		return 0, fmt.Errorf("%w: create_mode %q is not an octal permission", fileman.ErrInvalidConfig, c.CreateMode)
	}
	return fs.FileMode(mode), nil
}
