package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	port            string
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// ServerOptions overrides the default server timeouts. Zero values keep the defaults.
type ServerOptions struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(port string, handler http.Handler, opts ...ServerOptions) *Server {
	o := ServerOptions{
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 20 * time.Second,
		Logger:          slog.Default(),
	}
	if len(opts) > 0 {
		o = mergeOptions(o, opts[0])
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  o.ReadTimeout,
			WriteTimeout: o.WriteTimeout,
			IdleTimeout:  o.IdleTimeout,
		},
		port:            port,
		shutdownTimeout: o.ShutdownTimeout,
		logger:          o.Logger,
	}
}

func mergeOptions(base, override ServerOptions) ServerOptions {
	if override.ReadTimeout > 0 {
		base.ReadTimeout = override.ReadTimeout
	}
	if override.WriteTimeout > 0 {
		base.WriteTimeout = override.WriteTimeout
	}
	if override.IdleTimeout > 0 {
		base.IdleTimeout = override.IdleTimeout
	}
	if override.ShutdownTimeout > 0 {
		base.ShutdownTimeout = override.ShutdownTimeout
	}
	if override.Logger != nil {
		base.Logger = override.Logger
	}
	return base
}

// Start serves until SIGINT/SIGTERM and then shuts down gracefully
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", "port", s.port)
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		s.logger.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.httpServer.Close()
			return fmt.Errorf("could not gracefully shutdown server: %w", err)
		}

		s.logger.Info("server stopped gracefully")
	}

	return nil
}
