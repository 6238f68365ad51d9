// Package config loads handrank.hcl.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "handrank.hcl"

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// Config is the top-level configuration.
type Config struct {
	LogLevel  string          `hcl:"log_level,optional"`
	Color     string          `hcl:"color,optional"`
	TablesDir string          `hcl:"tables_dir,optional"`
	Server    *ServerSettings `hcl:"server,block"`
	Verify    *VerifySettings `hcl:"verify,block"`
}

// ServerSettings configures the evaluation service.
type ServerSettings struct {
	Address string `hcl:"address,optional"`
}

// VerifySettings configures exhaustive verification.
type VerifySettings struct {
	Workers int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Color:     ColorAuto,
		TablesDir: "tables",
		Server:    &ServerSettings{Address: "localhost:8080"},
		Verify:    &VerifySettings{Workers: 8},
	}
}

// Load reads filename. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Color == "" {
		c.Color = def.Color
	}
	if c.TablesDir == "" {
		c.TablesDir = def.TablesDir
	}
	if c.Server == nil {
		c.Server = def.Server
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Verify == nil {
		c.Verify = def.Verify
	}
	if c.Verify.Workers == 0 {
		c.Verify.Workers = def.Verify.Workers
	}
}

// Validate rejects values the commands cannot act on.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want one of %v)", c.LogLevel, logLevels)
	}
	if !slices.Contains(colorModes, c.Color) {
		return fmt.Errorf("invalid color %q (want one of %v)", c.Color, colorModes)
	}
	if c.Verify != nil && c.Verify.Workers < 1 {
		return fmt.Errorf("verify workers must be positive, got %d", c.Verify.Workers)
	}
	return nil
}

// Level converts LogLevel for charmbracelet/log.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
