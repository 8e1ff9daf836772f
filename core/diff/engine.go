package diff

import (
	"slices"

	"config-diff/core/helptable"
	"config-diff/core/ini"
)

// placement is one (group, key) pair of the union.
type placement struct {
	group string
	key   string
}

// Compare aligns the sources of one configuration file and returns a row per
// observed key followed by a sentinel row per empty source.
// A nil source is treated as an empty one.
func Compare(fileName string, table helptable.Table, sources []*ini.File) []Row {
	union := buildUnion(sources)

	rows := make([]Row, 0, len(union)+len(sources))
	for _, p := range union {
		rows = append(rows, buildRow(fileName, p, table, sources))
	}

	for i, src := range sources {
		if src.Empty() {
			rows = append(rows, sentinelRow(fileName, i+1, len(sources)))
		}
	}

	return rows
}

// buildUnion lists every (group, key) pair in first-seen order. A key name
// belongs to the first source holding it; every group of that source carrying
// the key yields a pair, while other groups of later sources are not added.
func buildUnion(sources []*ini.File) []placement {
	owner := make(map[string]int)
	seen := make(map[placement]struct{})
	var union []placement

	for i, src := range sources {
		for _, g := range src.Groups() {
			for _, key := range g.Keys() {
				if first, ok := owner[key]; ok && first != i {
					continue
				}
				owner[key] = i

				p := placement{group: g.Name, key: key}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				union = append(union, p)
			}
		}
	}

	return union
}

// buildRow creates the Row for a single key.
func buildRow(fileName string, p placement, table helptable.Table, sources []*ini.File) Row {
	row := Row{
		File:   fileName,
		Group:  p.group,
		Key:    p.key,
		Values: make([][]string, len(sources)),
	}

	if entry, ok := table.Lookup(p.group, p.key); ok {
		help, def := entry.Help, entry.Default
		row.Help = &help
		row.Default = &def
	}

	for i, src := range sources {
		values := src.Values(p.group, p.key)
		if values == nil {
			values = []string{}
		}
		row.Values[i] = values
	}

	row.Differs = differs(row.Values)
	return row
}

// differs reports whether any list after the first differs from the first.
func differs(values [][]string) bool {
	if len(values) < 2 {
		return false
	}
	first := values[0]
	for _, v := range values[1:] {
		if !slices.Equal(first, v) {
			return true
		}
	}
	return false
}

func sentinelRow(fileName string, source, count int) Row {
	values := make([][]string, count)
	for i := range values {
		values[i] = []string{}
	}
	return Row{
		File:    fileName,
		Group:   MissingMarker,
		Key:     SourceLabel(source),
		Differs: true,
		Values:  values,
		Source:  source,
	}
}

// Summarize counts keys, differing keys, undocumented keys and absent sources.
func Summarize(rows []Row) Summary {
	var s Summary
	for _, r := range rows {
		if r.Missing() {
			s.MissingSources++
			continue
		}
		s.Keys++
		if r.Differs {
			s.Differing++
		}
		if r.Help == nil {
			s.Undocumented++
		}
	}
	return s
}
