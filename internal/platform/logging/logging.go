// Package logging builds the service's slog logger and carries request-scoped
// loggers through context.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "creating task")
//
// Services log failures with the operation, the list and task ids involved and
// the full error:
//
//	logger.ErrorContext(ctx, "task operation failed",
//	    slog.String("operation", "UpdateTask"),
//	    slog.String("list_id", listID.String()),
//	    slog.String("task_id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Every handler created by New redacts credentials through masq, so a
// connection string or bearer token that reaches a log call is masked.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

type loggerKey struct{}

// New returns a logger writing cfg.Format ("text", otherwise JSON) at
// cfg.Level to w. Levels are matched case-insensitively and unknown levels
// fall back to info. Debug output includes the source location.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
