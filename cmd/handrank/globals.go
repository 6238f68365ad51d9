package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/display"
	"github.com/lox/handrank/internal/tablefile"
	"github.com/lox/handrank/poker"
)

// Globals are flags shared by every command. Empty values fall back to the
// config file.
type Globals struct {
	Config     string `short:"c" default:"${config_file}" help:"Path to HCL config file" type:"path"`
	LogLevel   string `help:"Log level (debug, info, warn, error)"`
	Color      string `help:"Colour output (auto, always, never)"`
	LoadTables bool   `help:"Load lookup tables from tables_dir instead of building them"`
}

// setup loads the config, applies flag overrides and builds the logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Color != "" {
		cfg.Color = g.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, SetupLogger(cfg.Level()), nil
}

func (g *Globals) printer(cfg *config.Config) *display.Printer {
	return display.NewPrinter(os.Stdout, cfg.Color)
}

// evaluator returns an evaluator over either the built-in tables or the
// tables persisted in cfg.TablesDir.
func (g *Globals) evaluator(cfg *config.Config, logger *log.Logger) (*poker.Evaluator, error) {
	if !g.LoadTables {
		return poker.NewEvaluator(nil), nil
	}
	table, err := tablefile.LoadAll(cfg.TablesDir)
	if err != nil {
		return nil, fmt.Errorf("loading tables: %w", err)
	}
	logger.Debug("Loaded lookup tables", "dir", cfg.TablesDir)
	return poker.NewEvaluator(table), nil
}
