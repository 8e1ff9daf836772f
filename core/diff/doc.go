// Package diff aligns N parsed configuration sources and reports, for every
// observed key, whether the sources disagree.
//
// # Alignment
//
// The engine builds the union of (group, key) pairs across all sources. Pairs
// are enumerated in first-seen order: sources in folder order, then groups in
// file order, then keys in group order. A key name belongs to the first source
// that holds it, and every group of that source carrying the key yields its
// own row, so "[db] host" and "[cache] host" are reported separately. When a
// later source places the same key under a group the owning source does not
// use, that placement is not reported; the later source simply contributes no
// values to the owner's rows.
//
// # Rows
//
// Every key yields one Row carrying the help text and default value from the
// help table (nil when the table has no entry) and one value list per source.
// A Row differs when any source after the first has a value list that is not
// identical, in order, to the first source's list.
//
// After the regular rows, one sentinel Row is appended per source that holds no
// key at all (missing or empty file). Sentinel rows always differ.
//
// # Usage
//
//	rows := diff.Compare("app.ini", table, []*ini.File{a, b})
//	summary := diff.Summarize(rows)
package diff
