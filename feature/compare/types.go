package compare

import (
	"context"
	"errors"
	"time"

	"config-diff/core/diff"
)

// ErrNotEnoughFolders is returned when fewer than MinFolders folders are given.
var ErrNotEnoughFolders = errors.New("at least two config folders are required")

// ErrNoHelpFolder is returned when the help folder argument is empty.
var ErrNoHelpFolder = errors.New("a help folder is required")

// FileResult holds the rows produced for one configuration file name.
type FileResult struct {
	// File is the compared file name.
	File string `json:"file"`

	// Rows are the diff rows in engine order.
	Rows []diff.Row `json:"rows"`

	// Summary aggregates Rows.
	Summary diff.Summary `json:"summary"`
}

// Result is the outcome of one comparison run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// HelpFolder is the folder help tables were loaded from.
	HelpFolder string `json:"help_folder"`

	// Folders are the compared folders in source order.
	Folders []string `json:"folders"`

	// Files holds one entry per discovered file name, in discovery order.
	Files []FileResult `json:"files"`

	// Summary aggregates all files.
	Summary diff.Summary `json:"summary"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the comparison took.
	Duration time.Duration `json:"duration"`
}

// Rows returns all rows grouped by file name in discovery order.
func (r *Result) Rows() []diff.Row {
	var rows []diff.Row
	for _, f := range r.Files {
		rows = append(rows, f.Rows...)
	}
	return rows
}

// Sink receives a finished run after its report has been written.
type Sink interface {
	// Name identifies the sink in logs.
	Name() string
	// Store persists or forwards the result. reportPath is the written report.
	Store(ctx context.Context, result *Result, reportPath string) error
}
