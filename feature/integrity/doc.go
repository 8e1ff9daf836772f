// Package integrity checks the infrastructure behind the optional report sinks.
//
// # Checks Provided
//
//   - Storage: The report bucket exists and every object under the prefix
//     follows the "<prefix>/<run id>/<file>" layout. Supports fixing a
//     missing bucket.
//   - Schema: The history tables carry every expected column.
//
// A check whose backend is not configured is reported as skipped.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks (supports ?fix=true).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
package integrity
