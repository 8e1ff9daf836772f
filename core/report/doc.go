// Package report serializes difference rows to a delimited text file and
// renders a short summary for the operator.
//
// # Format
//
// The first line is a header:
//
//	File,Group,Key,Help,Diff,Default,Value1,...,ValueN
//
// where N is the number of compared sources. Each following line is one row.
// The values of a repeated key are joined with the value delimiter (";" by
// default) inside their source column. Delimiter characters that appear in
// data are replaced with Config.Substitute; no other quoting is applied.
//
// # Locking
//
// WriteFile holds an advisory lock on "<path>.lock" while it writes, so two
// runs targeting the same report cannot interleave their output.
package report
