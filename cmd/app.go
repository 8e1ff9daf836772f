package cmd

import (
	"fmt"

	"config-diff/core/config"
	"config-diff/core/database"
	"config-diff/core/logger"
	"config-diff/core/report"
	"config-diff/core/storage"
	"config-diff/feature/compare"
	"config-diff/feature/history"
	"config-diff/feature/integrity"
	"config-diff/feature/integrity/checks"
	"config-diff/feature/publish"

	"go.uber.org/zap"
)

// app bundles the services shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	compare *compare.Service
	history *history.Service
	publish *publish.Service
	storage storage.Client
}

// newApp loads configuration, builds the logger and wires the optional sinks.
// overrides runs after loading so command-line flags win over the environment.
func newApp(overrides func(*config.Config)) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if overrides != nil {
		overrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logg}
	var sinks []compare.Sink

	// Connect to Database (Optional)
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			svc := history.NewService(db, logg)
			if err := svc.Migrate(); err != nil {
				logg.Warn("History disabled", zap.Error(err))
			} else {
				a.history = svc
				sinks = append(sinks, svc)
			}
		}
	}

	// Create Storage Client (Optional)
	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			a.storage = client
			a.publish = publish.NewService(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
			sinks = append(sinks, a.publish)
		}
	}

	a.compare = compare.NewService(cfg.Compare, report.NewWriter(cfg.Report), logg, sinks...)
	return a, nil
}

// integrity builds the integrity service over whichever sinks are configured.
func (a *app) integrity() *integrity.Service {
	var verifier checks.Verifier
	if a.history != nil {
		verifier = a.history
	}
	return integrity.NewService(a.storage, a.cfg.Storage.Bucket, a.cfg.Storage.Prefix, verifier, a.logger)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
