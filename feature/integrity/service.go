package integrity

import (
	"context"

	"config-diff/core/storage"
	"config-diff/feature/integrity/checks"

	"go.uber.org/zap"
)

// Check statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Result is the outcome of one check.
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Report any    `json:"report,omitempty"`
}

// Report combines every check.
type Report struct {
	Storage Result `json:"storage"`
	Schema  Result `json:"schema"`
}

// Healthy reports whether no check failed. Skipped checks count as healthy.
func (r Report) Healthy() bool {
	return r.Storage.Status != StatusError && r.Schema.Status != StatusError
}

// Service handles integrity checks of the optional report sinks.
// A nil client or verifier skips the matching check.
type Service struct {
	client   storage.Client
	bucket   string
	prefix   string
	verifier checks.Verifier
	logger   *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket, prefix string, verifier checks.Verifier, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		verifier: verifier,
		logger:   logger,
	}
}

// CheckStorage inspects the report bucket and creates it when fix is set.
func (s *Service) CheckStorage(ctx context.Context, fix bool) (*checks.StorageReport, error) {
	report, err := checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}
	if !report.Exists && fix {
		if err := checks.FixStorage(ctx, s.client, s.bucket, s.logger); err != nil {
			return nil, err
		}
		report.Exists = true
	}
	return report, nil
}

// CheckSchema compares the history tables with their expected columns.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.verifier)
}

// Run executes every configured check.
func (s *Service) Run(ctx context.Context, fix bool) Report {
	var report Report

	if s.client == nil {
		report.Storage = Result{Status: StatusSkipped}
	} else if r, err := s.CheckStorage(ctx, fix); err != nil {
		report.Storage = Result{Status: StatusError, Error: err.Error()}
	} else if !r.Exists {
		report.Storage = Result{Status: StatusError, Error: "bucket " + r.Bucket + " does not exist", Report: r}
	} else {
		report.Storage = Result{Status: StatusOK, Report: r}
	}

	if s.verifier == nil {
		report.Schema = Result{Status: StatusSkipped}
	} else if r, err := s.CheckSchema(); err != nil {
		report.Schema = Result{Status: StatusError, Error: err.Error()}
	} else if !r.Matched {
		report.Schema = Result{Status: StatusError, Error: "history schema is missing columns", Report: r}
	} else {
		report.Schema = Result{Status: StatusOK, Report: r}
	}

	return report
}
