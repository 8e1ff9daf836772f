package history

import (
	"context"
	"errors"
	"fmt"

	"config-diff/core/database"
	"config-diff/feature/compare"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize bounds the rows inserted per statement.
const batchSize = 500

// ErrRunNotFound is returned when a run id is unknown.
var ErrRunNotFound = errors.New("run not found")

// Service persists comparison runs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Name identifies the service as a compare sink.
func (s *Service) Name() string {
	return "history"
}

// Migrate creates or updates the history tables.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&Run{}, &RowRecord{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Verify returns the expected columns missing from the history tables,
// keyed by table name. An empty map means the schema matches.
func (s *Service) Verify() (map[string][]string, error) {
	report := make(map[string][]string)
	for table, cols := range map[string][]string{
		Run{}.TableName():       RunColumns,
		RowRecord{}.TableName(): RowColumns,
	} {
		missing, err := database.MissingColumns(s.db, table, cols)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report[table] = missing
		}
	}
	return report, nil
}

// Store saves a run and its rows in a single transaction.
func (s *Service) Store(ctx context.Context, res *compare.Result, reportPath string) error {
	run, records, err := newRun(res, reportPath)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", res.RunID, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&run).Error; err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&records, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Run stored", zap.String("run_id", run.ID), zap.Int("rows", len(records)))
	return nil
}

// Recent returns the latest runs without their rows, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	if err := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns a run with its rows in report order.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&run, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}
