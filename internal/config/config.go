// Package config loads htmlindex settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/htmlindex/internal/pathfilter"
	"github.com/taigrr/htmlindex/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultFiles are probed in order when no config path is given.
var DefaultFiles = []string{".htmlindex.yaml", ".htmlindex.yml", ".htmlindex.toml"}

// Config holds the knobs for building an index.
type Config struct {
	Directory   string   `yaml:"directory" toml:"directory"`
	Extension   string   `yaml:"extension" toml:"extension"`
	Exclude     string   `yaml:"exclude" toml:"exclude"`
	Output      string   `yaml:"output" toml:"output"`
	Title       string   `yaml:"title" toml:"title"`
	Ignore      []string `yaml:"ignore" toml:"ignore"`
	IncludeDirs bool     `yaml:"include_dirs" toml:"include_dirs"`
	Debounce    string   `yaml:"debounce" toml:"debounce"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Directory: "./docs",
		Extension: ".html",
		Exclude:   "index.html",
		Output:    "index.html",
		Title:     "Index of HTML Files",
		Debounce:  "250ms",
	}
}

// Load reads the config at path over the defaults. An empty path probes
// DefaultFiles in the working directory; finding none is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, candidate := range DefaultFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %s - %w", path, err)
	}

	// Exclude follows Output unless the file names it.
	cfg.Exclude = ""
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	if cfg.Exclude == "" {
		cfg.Exclude = cfg.Output
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %s - %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %s - %w", path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config format: %s", ErrInvalid, path)
	}
	return nil
}

// Validate checks the config for values no build could use.
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("%w: extension cannot be empty", ErrInvalid)
	}
	if c.Output == "" || strings.ContainsAny(c.Output, `/\`) {
		return fmt.Errorf("%w: output must be a file name, got %q", ErrInvalid, c.Output)
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	pf := pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: c.Ignore})
	if err := pf.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// DebounceDuration parses Debounce; empty means zero.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0, fmt.Errorf("%w: debounce: %w", ErrInvalid, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: debounce cannot be negative", ErrInvalid)
	}
	return d, nil
}

// Params converts the config into build parameters.
func (c *Config) Params() types.IndexParams {
	return types.IndexParams{
		Directory:   c.Directory,
		Extension:   c.Extension,
		Exclude:     c.Exclude,
		Output:      c.Output,
		Title:       c.Title,
		Ignore:      c.Ignore,
		IncludeDirs: c.IncludeDirs,
	}
}
