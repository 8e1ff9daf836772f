// Package helptable loads the optional metadata table that documents the keys
// of one configuration file.
//
// A help table is a comma separated file with a header row followed by
// "group,key,help,defaultValue" rows. Fields may be wrapped in double quotes.
// Rows with fewer than four fields or longer than ini.MaxLineSize are skipped,
// and a later row for the same
// group key replaces an earlier one.
package helptable

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"config-diff/core/ini"
)

// Extension is appended to a configuration file name to locate its help table.
const Extension = ".csv"

// Entry describes one configuration key.
type Entry struct {
	Group   string `json:"group"`
	Key     string `json:"key"`
	Help    string `json:"help"`
	Default string `json:"default"`
}

// Table maps group keys to their help entries.
type Table map[string]Entry

// GroupKey builds the composite lookup key for a group and key.
func GroupKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// Lookup returns the entry for (group, key).
func (t Table) Lookup(group, key string) (Entry, bool) {
	e, ok := t[GroupKey(group, key)]
	return e, ok
}

// Parse reads a help table from r. The first line is treated as a header.
func Parse(r io.Reader) (Table, error) {
	table := make(Table)

	scanner := ini.NewLineScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 4 {
			continue
		}

		e := Entry{
			Group:   unquote(fields[0]),
			Key:     unquote(fields[1]),
			Help:    unquote(fields[2]),
			Default: unquote(fields[3]),
		}
		table[GroupKey(e.Group, e.Key)] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read help table: %w", err)
	}

	return table, nil
}

// Load reads the help table at path. A missing file yields an empty table.
func Load(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("failed to open help table %s: %w", path, err)
	}
	defer fh.Close()

	return Parse(fh)
}

func unquote(field string) string {
	return strings.Trim(strings.TrimSpace(field), `"`)
}
