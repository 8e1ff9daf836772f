// Package compare orchestrates a configuration comparison across folders.
//
// For a help folder and N >= 2 configuration folders it:
//
//  1. Discovers the union of file names found directly inside the folders
//     (filtered by Config.Filter and Config.IgnoreSubstrings).
//  2. For every file name, loads "<help folder>/<name>.csv" and parses
//     "<folder>/<name>" in each folder, then runs the diff engine.
//  3. Collects the rows grouped by file name in discovery order.
//
// File names are compared concurrently by a bounded worker pool. The Collector
// is the only shared state and restores discovery order, so the report is the
// same as a sequential run would produce.
//
// Missing or unreadable files never abort a run: they are treated as absent
// sources and surface as sentinel rows in the report.
//
// # Sinks
//
// Execute writes the report and then offers the Result to every registered
// Sink (run history database, object storage upload). Sinks are optional and
// their failures are logged only.
//
// # HTTP Endpoints
//
//   - POST /compare : Runs a comparison and returns the Result as JSON.
package compare
