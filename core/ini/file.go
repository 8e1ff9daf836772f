package ini

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultGroup is the name of the implicit group preceding any section header.
const DefaultGroup = ""

// Group is a named section holding keys in order of first appearance.
type Group struct {
	// Name is the section name without brackets.
	Name string

	keys   []string
	values map[string][]string
}

func newGroup(name string) *Group {
	return &Group{
		Name:   name,
		values: make(map[string][]string),
	}
}

// Keys returns the key names of the group in order of first appearance.
func (g *Group) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Values returns the values recorded for key, in order of appearance.
func (g *Group) Values(key string) []string {
	vals, ok := g.values[key]
	if !ok {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether key appeared in the group at least once.
func (g *Group) Has(key string) bool {
	_, ok := g.values[key]
	return ok
}

func (g *Group) add(key, value string) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.values[key] = append(g.values[key], value)
}

// File is one parsed configuration source.
// It is built once by Parse and not modified afterwards.
type File struct {
	groups []*Group
	index  map[string]*Group
}

// New returns an empty File.
func New() *File {
	return &File{index: make(map[string]*Group)}
}

func (f *File) group(name string) *Group {
	if g, ok := f.index[name]; ok {
		return g
	}
	g := newGroup(name)
	f.groups = append(f.groups, g)
	f.index[name] = g
	return g
}

// Groups returns the groups in order of first appearance.
func (f *File) Groups() []*Group {
	if f == nil {
		return nil
	}
	out := make([]*Group, len(f.groups))
	copy(out, f.groups)
	return out
}

// Group returns the named group, or nil if it was never declared or used.
func (f *File) Group(name string) *Group {
	if f == nil {
		return nil
	}
	return f.index[name]
}

// Values returns the values of key inside group, or nil when absent.
func (f *File) Values(group, key string) []string {
	g := f.Group(group)
	if g == nil {
		return nil
	}
	return g.Values(key)
}

// Empty reports whether the file holds no key at all.
// Declared groups without keys do not count.
func (f *File) Empty() bool {
	if f == nil {
		return true
	}
	for _, g := range f.groups {
		if len(g.keys) > 0 {
			return false
		}
	}
	return true
}

// KeyCount returns the number of distinct (group, key) pairs.
func (f *File) KeyCount() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, g := range f.groups {
		n += len(g.keys)
	}
	return n
}

// Write serializes the file back to INI text. Re-parsing the output yields
// the same groups, keys and value lists.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, g := range f.Groups() {
		if i > 0 || g.Name != DefaultGroup || len(g.keys) == 0 {
			if _, err := fmt.Fprintf(bw, "[%s]\n", g.Name); err != nil {
				return err
			}
		}
		for _, key := range g.keys {
			for _, value := range g.values[key] {
				if _, err := fmt.Fprintf(bw, "%s = %s\n", key, value); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
