package main

import (
	"fmt"

	"github.com/lox/handrank/internal/tablefile"
	"github.com/lox/handrank/poker"
)

// TablesCmd manages persisted lookup tables.
type TablesCmd struct {
	Write TablesWriteCmd `cmd:"" help:"Build the lookup tables and write them to disk"`
	Check TablesCheckCmd `cmd:"" help:"Load persisted tables and compare them with freshly built ones"`
}

type TablesWriteCmd struct {
	Dir string `short:"d" help:"Output directory (defaults to tables_dir)" type:"path"`
}

func (c *TablesWriteCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	dir := c.Dir
	if dir == "" {
		dir = cfg.TablesDir
	}

	table := poker.NewLookupTable()
	if err := tablefile.SaveAll(dir, table); err != nil {
		return err
	}
	for _, kind := range poker.TableKinds {
		logger.Info("Wrote table", "kind", kind, "entries", table.Len(kind),
			"file", tablefile.FileName(kind))
	}
	return nil
}

type TablesCheckCmd struct {
	Dir string `short:"d" help:"Directory to check (defaults to tables_dir)" type:"path"`
}

func (c *TablesCheckCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	dir := c.Dir
	if dir == "" {
		dir = cfg.TablesDir
	}

	loaded, err := tablefile.LoadAll(dir)
	if err != nil {
		return err
	}
	if err := loaded.Equal(poker.NewLookupTable()); err != nil {
		return fmt.Errorf("tables in %s are stale: %w", dir, err)
	}
	logger.Info("Tables match", "dir", dir)
	return nil
}
