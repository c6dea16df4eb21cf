package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server runs the task list API over HTTP and drains it on shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	once     sync.Once
	ready    chan struct{}
	listener net.Listener
}

// NewServer creates a server for handler bound to cfg.Host:cfg.Port. Port 0
// picks a free port; Addr reports it once the server is listening. A nil
// logger discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the listen address and serves until Shutdown. It returns nil
// after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.once.Do(func() {
		s.listener = ln
		close(s.ready)
	})
	s.logger.Info("serving task list API", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// Ready is closed once Start has bound its listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops accepting connections and waits for in-flight requests. A
// context without a deadline gets a 10 second one.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("draining HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}
	return nil
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	select {
	case <-s.ready:
		return s.listener.Addr().String()
	default:
		return s.srv.Addr
	}
}
