// Package tablefile persists lookup tables as newline-delimited "key,value"
// pairs, where key is the hand fingerprint and value its rank.
package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lox/handrank/internal/fileutil"
	"github.com/lox/handrank/poker"
)

// FileName returns the file a table kind is stored in, e.g. "flush.csv".
func FileName(kind poker.TableKind) string {
	return kind.String() + ".csv"
}

// Encode writes entries as key,value lines.
func Encode(w io.Writer, entries []poker.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d,%d\n", e.Key, e.Rank); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads key,value lines. Blank lines are skipped; anything else that
// is not two unsigned integers is an error naming the line.
func Decode(r io.Reader) ([]poker.Entry, error) {
	var entries []poker.Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		key, value, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key,value: %q", line, text)
		}
		k, err := strconv.ParseUint(strings.TrimSpace(key), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad key: %w", line, err)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad value: %w", line, err)
		}
		entries = append(entries, poker.Entry{Key: uint32(k), Rank: poker.HandRank(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Write stores entries in path atomically.
func Write(path string, entries []poker.Entry) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, entries)
	})
}

// Read loads the entries stored in path.
func Read(path string) ([]poker.Entry, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// SaveAll writes all three tables into dir.
func SaveAll(dir string, table *poker.LookupTable) error {
	for _, kind := range poker.TableKinds {
		if err := Write(filepath.Join(dir, FileName(kind)), table.Entries(kind)); err != nil {
			return fmt.Errorf("writing %s table: %w", kind, err)
		}
	}
	return nil
}

// LoadAll reads the three tables from dir and rebuilds the lookup table.
func LoadAll(dir string) (*poker.LookupTable, error) {
	entries := make(map[poker.TableKind][]poker.Entry, len(poker.TableKinds))
	for _, kind := range poker.TableKinds {
		e, err := Read(filepath.Join(dir, FileName(kind)))
		if err != nil {
			return nil, fmt.Errorf("reading %s table: %w", kind, err)
		}
		entries[kind] = e
	}
	return poker.NewLookupTableFromEntries(entries)
}
