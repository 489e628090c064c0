package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// Server is the inbound HTTP server for lifecycle commands.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer creates a server for handler. Every request context starts out
// carrying logger, and net/http's own errors (TLS handshakes, malformed
// requests) are written through it at warn level.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			BaseContext: func(net.Listener) context.Context {
				return logging.WithLogger(context.Background(), logger)
			},
		},
		logger: logger,
	}
}

// Start listens on the configured address and serves until Shutdown. It
// returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight commands to
// finish their unit of work, bounded by ctx (defaultShutdownTimeout when ctx
// has no deadline). Connections still open at the deadline are closed and
// an error is returned, since those commands may be partially committed.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	err := s.srv.Shutdown(ctx)
	if err == nil {
		return nil
	}

	s.logger.Error("in-flight commands did not finish before shutdown deadline", slog.Any("error", err))
	if cerr := s.srv.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return fmt.Errorf("shutting down HTTP server: %w", err)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
