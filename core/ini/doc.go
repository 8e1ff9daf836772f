// Package ini parses INI-style configuration files into a grouped,
// multi-valued structure.
//
// # Format
//
//   - Lines whose first non-space character is ';' are comments.
//   - "[name]" opens a group. Groups are kept even when they hold no keys.
//   - "key = value" lines split at the first '='; values may contain '='.
//   - Keys before any header belong to the default group "".
//   - A key repeated within a group accumulates values instead of overwriting.
//
// Anything else (blank lines, lines without '=') is ignored, and so is any
// line longer than MaxLineSize; the rest of the file is still read.
//
// # Usage
//
//	f, err := ini.ParseFile("folder1/app.ini")
//	if err != nil {
//	    return err
//	}
//	hosts := f.Values("db", "host")
//
// A missing file is not an error: ParseFile returns an empty File, which the
// diff engine reads as "source absent".
package ini
