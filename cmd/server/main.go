// Command server runs the task list API. It loads the profile named by
// APP_PROFILE, wires the graph with samber/do v2 (choosing the memory or
// postgres store from database.driver) and serves until SIGINT or SIGTERM.
// Shutdown drains HTTP first, then closes the store, then flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/tasklists-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/memory"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/tasklists-service/internal/app"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/health"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// Readiness probes within this window reuse the previous store check.
	readinessCacheTTL = time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the whole graph, including the store.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	store := do.MustInvoke[*persistence](injector)
	defer store.close()

	do.MustInvoke[ports.HealthRegistry](injector).Register(store.checker)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests before the deferred store and telemetry
	// shutdown run.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// persistence is the repository pair selected by database.driver together
// with the store's readiness check and release hook.
type persistence struct {
	lists   ports.TaskListRepository
	tasks   ports.TaskRepository
	checker ports.HealthChecker
	close   func()
}

func openPersistence(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*persistence, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg, metrics, logger)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return &persistence{
			lists:   store.TaskLists(),
			tasks:   store.Tasks(),
			checker: store,
			close:   store.Close,
		}, nil
	case config.DriverMemory:
		store := memory.New()
		logger.Warn("using in-memory store, data is lost on restart")
		return &persistence{
			lists:   store.TaskLists(),
			tasks:   store.Tasks(),
			checker: store,
			close:   func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*persistence, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openPersistence(ctx, &cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskListService, error) {
		store := do.MustInvoke[*persistence](i)
		return app.NewTaskListService(store.lists, store.tasks, logger,
			app.WithListWorkers(cfg.App.ListWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*persistence](i)
		return app.NewTaskService(store.tasks, store.lists, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCacheTTL(readinessCacheTTL)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskListHandler, error) {
		svc := do.MustInvoke[ports.TaskListService](i)
		return handlers.NewTaskListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		h := adapthttp.Handlers{
			TaskLists: do.MustInvoke[*handlers.TaskListHandler](i),
			Tasks:     do.MustInvoke[*handlers.TaskHandler](i),
			Health:    do.MustInvoke[*handlers.HealthHandler](i),
		}

		return adapthttp.NewRouter(h, cfg.HTTP.CORS,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.HTTP.RateLimit),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
