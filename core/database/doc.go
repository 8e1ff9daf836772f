// Package database handles the optional run history database connection and
// schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver and verifies the connection with a ping
// bounded by TimeoutSeconds. The history feature treats a failed connection as
// a warning, never as a failed comparison.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definitions so the
// history store can report drift between its models and an existing schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "comparison_runs", []string{"id"})
package database
