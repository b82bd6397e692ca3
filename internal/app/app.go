package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/config"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/actors"
	auditrepo "github.com/heartmarshall/casedesk/internal/database/repository/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/roles"
	"github.com/heartmarshall/casedesk/internal/metrics"
	"github.com/heartmarshall/casedesk/internal/safeexec"
	"github.com/heartmarshall/casedesk/internal/service"
	"github.com/heartmarshall/casedesk/internal/session"
)

// App is the wired data layer: one pool, one session, one audit pipeline.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Sessions *session.Manager
	Exec     *safeexec.Executor
	Recorder *audit.Recorder
	Audit    *audit.Reader
	Services *service.Services

	pool *pgxpool.Pool
}

// Open connects to PostgreSQL and wires the application around the pool.
// The session file named in the config is loaded but not yet validated.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.Open: %w", err)
	}

	store := session.NewFileStore(cfg.Session.FilePath, cfg.Session.Secret, logger)
	a, err := Assemble(ctx, cfg, pool, store, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	a.pool = pool

	logger.DebugContext(ctx, "application wired",
		slog.String("version", BuildVersion()),
		slog.String("session_file", store.Path()))

	return a, nil
}

// Assemble wires every component over q. Tests pass a pgxmock querier and a
// memory session store.
func Assemble(ctx context.Context, cfg *config.Config, q database.Querier, store session.Store, logger *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	recorder := audit.NewRecorder(auditrepo.NewAuditRepository(q), logger, m, cfg.Audit.FailureLogSize)
	reader := audit.NewReader(auditrepo.NewAuditRepository(q), recorder, recorder, logger, m, audit.ReaderConfig{
		PlaceholderOnDegraded: cfg.Audit.PlaceholderOnDegraded,
		ExportMaxRows:         cfg.Audit.ExportMaxRows,
		StatsTopN:             cfg.Audit.StatsTopN,
		StatsWindow:           cfg.Audit.StatsWindow,
	})

	sessions := session.NewManager(logger, actors.NewActorRepository(q), roles.NewRoleRepository(q), store, cfg.Session.TTL)
	if err := sessions.Start(ctx); err != nil {
		return nil, fmt.Errorf("app.Assemble: %w", err)
	}

	services, err := service.NewServices(service.Deps{
		Querier:       q,
		Recorder:      recorder,
		Logger:        logger,
		ExportMaxRows: cfg.Audit.ExportMaxRows,
	})
	if err != nil {
		return nil, fmt.Errorf("app.Assemble: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Metrics:  m,
		Sessions: sessions,
		Exec:     safeexec.New(sessions, logger, m),
		Recorder: recorder,
		Audit:    reader,
		Services: services,
	}, nil
}

// Pool returns the connection pool, or nil for an assembled App.
func (a *App) Pool() *pgxpool.Pool { return a.pool }

// WriteMetrics writes every collector in the Prometheus text format to path,
// replacing the file atomically. The output suits the node exporter's
// textfile collector.
func (a *App) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, a.Registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// Close flushes pending audit writes, then releases the pool.
func (a *App) Close() {
	a.Recorder.Wait()
	if a.pool != nil {
		a.pool.Close()
	}
}
