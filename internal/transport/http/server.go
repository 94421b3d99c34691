package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SudheerKondamuri/dex-amm/internal/config"
	"github.com/SudheerKondamuri/dex-amm/internal/service"
)

// Server represents the HTTP transport layer: the pool's read-only query
// surface. Mutating operations stay library-level on the pool engine.
type Server struct {
	svc    service.Service
	mux    *http.ServeMux
	logger *zap.Logger

	graceTimeout      time.Duration
	readHeaderTimeout time.Duration
	requestTimeout    time.Duration
}

// NewServer creates a new HTTP server with registered routes.
func NewServer(svc service.Service, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		svc:    svc,
		mux:    http.NewServeMux(),
		logger: logger,

		graceTimeout:      cfg.GraceTimeout,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		requestTimeout:    cfg.RequestTimeout,
	}

	s.mux.HandleFunc("/quote", s.handleQuote)
	s.mux.HandleFunc("/price", s.handlePrice)
	s.mux.HandleFunc("/reserves", s.handleReserves)
	s.mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			s.logger.Warn("ping write error", zap.Error(err))
		}
	})

	return s, nil
}

// ListenAndServe starts the HTTP server and enables graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.logMiddleware(s.mux),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("http server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Block until a signal is received.
	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "srv.Shutdown")
	}
	s.logger.Info("server stopped gracefully")
	return nil
}

// logMiddleware logs each HTTP request and the time taken to process it.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Duration("took", time.Since(start)))
	})
}
