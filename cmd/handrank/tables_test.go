package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/tablefile"
	"github.com/lox/handrank/poker"
)

func testGlobals(t *testing.T) *Globals {
	t.Helper()
	return &Globals{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		LogLevel: "error",
		Color:    "never",
	}
}

func TestTablesWriteThenCheck(t *testing.T) {
	t.Parallel()
	g := testGlobals(t)
	dir := t.TempDir()

	require.NoError(t, (&TablesWriteCmd{Dir: dir}).Run(g))
	for _, kind := range poker.TableKinds {
		assert.FileExists(t, filepath.Join(dir, tablefile.FileName(kind)))
	}
	require.NoError(t, (&TablesCheckCmd{Dir: dir}).Run(g))
}

func TestTablesCheckDetectsStaleTable(t *testing.T) {
	t.Parallel()
	g := testGlobals(t)
	dir := t.TempDir()
	require.NoError(t, (&TablesWriteCmd{Dir: dir}).Run(g))

	// Swap the ranks of the two best straight flushes.
	path := filepath.Join(dir, tablefile.FileName(poker.FlushTable))
	entries, err := tablefile.Read(path)
	require.NoError(t, err)
	entries[0].Rank, entries[1].Rank = entries[1].Rank, entries[0].Rank
	require.NoError(t, tablefile.Write(path, entries))

	err = (&TablesCheckCmd{Dir: dir}).Run(g)
	assert.ErrorContains(t, err, "are stale")
}

func TestTablesCheckMissingDir(t *testing.T) {
	t.Parallel()
	err := (&TablesCheckCmd{Dir: filepath.Join(t.TempDir(), "nope")}).Run(testGlobals(t))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGlobalsRejectBadOverrides(t *testing.T) {
	t.Parallel()
	g := testGlobals(t)
	g.Color = "rainbow"
	_, _, err := g.setup()
	assert.ErrorContains(t, err, `invalid color "rainbow"`)
}

func TestLoadTables(t *testing.T) {
	t.Parallel()
	g := testGlobals(t)
	dir := t.TempDir()
	require.NoError(t, (&TablesWriteCmd{Dir: dir}).Run(g))

	cfg, logger, err := g.setup()
	require.NoError(t, err)
	cfg.TablesDir = dir
	g.LoadTables = true

	eval, err := g.evaluator(cfg, logger)
	require.NoError(t, err)
	hr, err := eval.EvaluateCards(poker.MustParseCards("As Ks Qs Js Ts"))
	require.NoError(t, err)
	assert.Equal(t, poker.HandRank(1), hr)
}
