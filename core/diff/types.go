package diff

import "fmt"

// MissingMarker replaces the group name of sentinel rows.
const MissingMarker = "<file missing>"

// Row is one line of the difference report.
type Row struct {
	// File is the configuration file name the row belongs to.
	File string `json:"file"`

	// Group is the group the key was first seen under.
	// For sentinel rows it holds MissingMarker.
	Group string `json:"group"`

	// Key is the configuration key, or the absent source label for sentinel rows.
	Key string `json:"key"`

	// Help is the help text from the help table, nil when undocumented.
	Help *string `json:"help"`

	// Differs is true when the sources disagree on the value list.
	Differs bool `json:"differs"`

	// Default is the documented default value, nil when undocumented.
	Default *string `json:"default"`

	// Values holds one value list per source, in source order.
	Values [][]string `json:"values"`

	// Source is the 1-based index of the absent source for sentinel rows, 0 otherwise.
	Source int `json:"source,omitempty"`
}

// Missing reports whether r is a sentinel row for an absent source.
func (r Row) Missing() bool {
	return r.Source > 0
}

// SourceLabel returns the key used by sentinel rows for the given 1-based source index.
func SourceLabel(index int) string {
	return fmt.Sprintf("source%d", index)
}

// Summary provides aggregate counts over a set of rows.
type Summary struct {
	// Keys counts regular rows.
	Keys int `json:"keys"`

	// Differing counts regular rows whose values disagree.
	Differing int `json:"differing"`

	// Undocumented counts regular rows without a help entry.
	Undocumented int `json:"undocumented"`

	// MissingSources counts sentinel rows.
	MissingSources int `json:"missing_sources"`
}

// Add accumulates other into s.
func (s *Summary) Add(other Summary) {
	s.Keys += other.Keys
	s.Differing += other.Differing
	s.Undocumented += other.Undocumented
	s.MissingSources += other.MissingSources
}
