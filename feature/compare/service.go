package compare

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"config-diff/core/diff"
	"config-diff/core/helptable"
	"config-diff/core/ini"
	"config-diff/core/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service drives a comparison across configuration folders.
type Service struct {
	cfg    Config
	writer *report.Writer
	logger *zap.Logger
	sinks  []Sink
}

// NewService creates a new comparison service.
func NewService(cfg Config, writer *report.Writer, logger *zap.Logger, sinks ...Sink) *Service {
	return &Service{
		cfg:    cfg.withDefaults(),
		writer: writer,
		logger: logger,
		sinks:  sinks,
	}
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Validate checks the folder arguments of a run.
func Validate(helpFolder string, folders []string) error {
	if helpFolder == "" {
		return ErrNoHelpFolder
	}
	if len(folders) < MinFolders {
		return ErrNotEnoughFolders
	}
	return nil
}

// Run compares every discovered file name across folders and collects the rows.
// File names are processed concurrently; the result keeps discovery order.
func (s *Service) Run(ctx context.Context, helpFolder string, folders []string) (*Result, error) {
	if err := Validate(helpFolder, folders); err != nil {
		return nil, err
	}

	started := time.Now()
	names, err := s.Discover(folders)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Discovered config files", zap.Int("count", len(names)), zap.Strings("folders", folders))

	collector := NewCollector(len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			collector.Add(i, s.CompareFile(name, helpFolder, folders))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparison interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("comparison interrupted: %w", err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		HelpFolder: helpFolder,
		Folders:    folders,
		Files:      collector.Results(),
		StartedAt:  started,
	}
	for _, f := range res.Files {
		res.Summary.Add(f.Summary)
	}
	res.Duration = time.Since(started)

	return res, nil
}

// CompareFile loads the help table and every source of one file name and
// diffs them. Unreadable files are logged and treated as absent.
func (s *Service) CompareFile(name, helpFolder string, folders []string) FileResult {
	l := s.logger.With(zap.String("file", name))

	helpPath := filepath.Join(helpFolder, name+helptable.Extension)
	table, err := helptable.Load(helpPath)
	if err != nil {
		l.Warn("Failed to load help table, continuing without help", zap.String("path", helpPath), zap.Error(err))
		table = helptable.Table{}
	}

	sources := make([]*ini.File, len(folders))
	for i, folder := range folders {
		path := filepath.Join(folder, name)
		src, err := ini.ParseFile(path)
		if err != nil {
			l.Warn("Failed to read config, treating as absent", zap.String("path", path), zap.Error(err))
			src = ini.New()
		}
		sources[i] = src
	}

	rows := diff.Compare(name, table, sources)
	return FileResult{
		File:    name,
		Rows:    rows,
		Summary: diff.Summarize(rows),
	}
}

// Execute runs the comparison, writes the report to the configured output and
// hands the result to every sink. Sink failures are logged, not returned.
func (s *Service) Execute(ctx context.Context, helpFolder string, folders []string) (*Result, error) {
	res, err := s.Run(ctx, helpFolder, folders)
	if err != nil {
		return nil, err
	}

	if err := s.writer.WriteFile(s.cfg.Output, res.Rows(), len(folders)); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	s.logger.Info("Comparison completed",
		zap.String("run_id", res.RunID),
		zap.String("output", s.cfg.Output),
		zap.Int("files", len(res.Files)),
		zap.Int("keys", res.Summary.Keys),
		zap.Int("differing", res.Summary.Differing),
		zap.Int("missing_sources", res.Summary.MissingSources),
		zap.Duration("execution_time", res.Duration),
	)

	for _, sink := range s.sinks {
		if err := sink.Store(ctx, res, s.cfg.Output); err != nil {
			s.logger.Warn("Optional sink failed", zap.String("sink", sink.Name()), zap.Error(err))
			continue
		}
		s.logger.Debug("Result stored", zap.String("sink", sink.Name()))
	}

	return res, nil
}
