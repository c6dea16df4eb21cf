// Package postgres implements the task list and task repositories on
// PostgreSQL using a pgx connection pool.
//
// Every statement runs through a circuit breaker, an OpenTelemetry client
// span and the store operation metrics:
//
//	store, err := postgres.New(ctx, &cfg.Database, metrics, logger)
//	lists, tasks := store.TaskLists(), store.Tasks()
//
// pgx.ErrNoRows maps to domain.ErrNotFound and an open breaker to
// domain.ErrUnavailable.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/resilience"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/telemetry"
)

const (
	name     = "postgres"
	dbSystem = "postgresql"

	// foreignKeyViolation is the SQLSTATE raised when a task references a
	// list that no longer exists.
	foreignKeyViolation = "23503"
)

// Store owns the connection pool shared by both repositories.
type Store struct {
	pool    *pgxpool.Pool
	breaker *resilience.Breaker
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// New opens a pool to cfg.URL, applies pool sizing, waits for the database to
// answer a ping (retrying per cfg.ConnectRetry) and, when cfg.Migrate is set,
// applies pending migrations. If metrics is nil, metric recording is skipped.
func New(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	err = resilience.Retry(ctx, &cfg.ConnectRetry, logger, "postgres.Ping", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.Migrate {
		if err := Migrate(cfg.URL, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	logger.Info("connected to database", slog.Any("database", *cfg))

	return &Store{
		pool:    pool,
		breaker: resilience.NewBreaker(name, &cfg.CircuitBreaker, logger),
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/tasklists-service/internal/adapters/postgres"),
		logger:  logger,
	}, nil
}

// TaskLists returns the task list repository backed by this store.
func (s *Store) TaskLists() *TaskListRepository {
	return &TaskListRepository{store: s}
}

// Tasks returns the task repository backed by this store.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{store: s}
}

// Close releases every pooled connection.
func (s *Store) Close() {
	s.pool.Close()
	s.logger.Info("database pool closed")
}

// Name identifies the store in readiness output.
func (s *Store) Name() string {
	return name
}

// HealthCheck fails while the breaker is open and otherwise pings the
// database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.breaker.IsOpen() {
		return s.breaker.Status()
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// run executes fn under a client span, the circuit breaker and the store
// metrics. Driver errors are translated to domain errors before the breaker
// sees them so that not-found and conflict results do not count as failures.
func (s *Store) run(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "postgres "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(string(telemetry.AttrDBSystem), dbSystem),
			attribute.String(string(telemetry.AttrDBOperation), op),
		),
	)
	defer span.End()

	err := s.breaker.Execute(func() error {
		return translate(fn(ctx))
	})

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.record(ctx, op, start, err)

	return err
}

// record records store duration and count metrics. Safe to call with nil
// metrics.
func (s *Store) record(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(resultOf(err)),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case resilience.IsRejection(err):
		return "circuit_open"
	default:
		return "error"
	}
}

// translate maps driver errors onto domain errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	}
	return err
}
