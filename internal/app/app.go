package app

import (
	"context"
	"fmt"

	"meal-plan-seeder/internal/config"
	"meal-plan-seeder/internal/fixture"
	"meal-plan-seeder/internal/metrics"
	"meal-plan-seeder/internal/planner"
	"meal-plan-seeder/internal/storage"

	"go.uber.org/zap"
)

// App holds the application's dependencies.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *storage.SQLStore
	opts   []planner.Option
}

// Result describes a finished generation run.
type Result struct {
	File    string
	Path    string
	Summary metrics.RunSummary
}

// NewApp creates and initializes a new App instance.
func NewApp(cfg *config.Config, logger *zap.Logger, store *storage.SQLStore, opts ...planner.Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		opts:   opts,
	}
}

// Run generates the configured date range, renders it and writes the SQL file.
func (a *App) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log := a.logger.With(zap.String("preset", a.cfg.Preset))
	log.Info("generating meal plans",
		zap.String("start", a.cfg.StartDate.Format(planner.DateLayout)),
		zap.String("end", a.cfg.EndDate.Format(planner.DateLayout)),
		zap.String("surgery", a.cfg.SurgeryDate.Format(planner.DateLayout)),
		zap.Stringer("brackets", a.cfg.Brackets),
	)

	gen := planner.NewGenerator(a.cfg.UserID, a.cfg.SurgeryDate, a.cfg.Brackets, a.cfg.Catalog, a.opts...)
	plans := gen.Generate(a.cfg.StartDate, a.cfg.EndDate)
	if len(plans) == 0 {
		log.Warn("date range is empty, writing an empty file")
	}

	body, err := fixture.Render(plans, a.cfg.Style)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render sql: %w", err)
	}
	log.Debug("rendered statements", zap.Int("plans", len(plans)), zap.String("style", string(a.cfg.Style)))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	saved, err := a.store.Save(a.cfg.OutputFile, body)
	if err != nil {
		return Result{}, err
	}

	summary := metrics.Summarize(plans, saved.Bytes)
	log.Info("sql file written",
		zap.String("path", saved.Path),
		zap.Int("plans", summary.Plans),
		zap.String("phases", summary.PhaseBreakdown()),
		zap.String("size", summary.Size),
	)

	return Result{
		File:    a.cfg.OutputFile,
		Path:    saved.Path,
		Summary: summary,
	}, nil
}
