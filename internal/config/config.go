package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bjaus/docprinter"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultIndentSize is the nest indentation used when none is configured.
const DefaultIndentSize = 4

// Config holds the settings of the docfmt command.
type Config struct {
	// -- Rendering --

	// Maximum line width for the smart renderer. Zero selects the simple
	// renderer.
	MaxLineWidth int `env:"DOCFMT_MAX_LINE_WIDTH" yaml:"max_line_width"`
	// Simple renderer layout, "shortest" or "longest"
	Layout string `env:"DOCFMT_LAYOUT" yaml:"layout"`

	// -- Documents --

	// Indentation of nests that do not give their own
	IndentSize int `env:"DOCFMT_INDENT_SIZE" yaml:"indent_size"`
}

// ConfigOptions names the optional files ParseConfig reads.
type ConfigOptions struct {
	EnvFilePath string
	// YAML file read before the environment. Environment variables win.
	ConfigFilePath string
}

// ParseConfig reads the optional config file, then environment variables
// (optionally loaded from an env file) to a valid Config.
func ParseConfig(opt *ConfigOptions) (*Config, error) {
	cfg := Config{IndentSize: DefaultIndentSize}

	if opt != nil && opt.ConfigFilePath != "" {
		if err := readFile(opt.ConfigFilePath, &cfg); err != nil {
			return nil, err
		}
	}

	if opt != nil && opt.EnvFilePath != "" {
		// Load variables from a file to the environment of the process
		if err := godotenv.Load(opt.EnvFilePath); err != nil {
			log.Warnf("Could not load environment variables from file %s: %s", opt.EnvFilePath, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the values that env and yaml cannot check on their own.
func (c *Config) Validate() error {
	if c.MaxLineWidth < 0 {
		return fmt.Errorf("max line width must not be negative, got %d", c.MaxLineWidth)
	}
	if c.IndentSize < 0 {
		return fmt.Errorf("indent size must not be negative, got %d", c.IndentSize)
	}
	if c.Layout != "" {
		if _, err := docprinter.ParseLayout(c.Layout); err != nil {
			return err
		}
	}
	return nil
}

// Renderer returns the smart renderer when a maximum line width is set and
// the simple renderer otherwise. A layout given together with a width is
// ignored with a warning.
func (c *Config) Renderer(logger log.FieldLogger) (docprinter.Renderer, error) {
	if c == nil {
		return nil, errors.New("config not provided")
	}
	if c.MaxLineWidth > 0 {
		if c.Layout != "" && logger != nil {
			logger.WithField("layout", c.Layout).Warn("Layout is ignored when a maximum line width is set")
		}
		return docprinter.SmartRenderer{MaxLineWidth: c.MaxLineWidth}, nil
	}
	layout := docprinter.Shortest
	if c.Layout != "" {
		l, err := docprinter.ParseLayout(c.Layout)
		if err != nil {
			return nil, err
		}
		layout = l
	}
	return docprinter.SimpleRenderer{Layout: layout}, nil
}
