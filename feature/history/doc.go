// Package history persists comparison runs and their rows in a SQL database.
//
// The Service implements compare.Sink, so when the database is enabled every
// CLI or HTTP run is stored after its report is written. Rows keep their report
// position, so a stored run reproduces the exact report order.
//
// # Tables
//
//   - comparison_runs : one row per run (id, folders, counts, timing).
//   - comparison_rows : one row per diff row, values stored as JSON.
//
// # HTTP Endpoints
//
//   - GET /history : Lists recent runs (supports ?limit=N).
//   - GET /history/:id : Returns one run with its rows.
package history
