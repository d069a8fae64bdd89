// Package server exposes the word index over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"poorcene/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Server serves index, query and stem requests.
type Server struct {
	uc      *usecase.IndexUseCase
	router  *chi.Mux
	httpSrv *http.Server
	logger  *slog.Logger
	started time.Time
}

// New builds the router. metrics may be nil, in which case /metrics is not
// mounted.
func New(addr string, uc *usecase.IndexUseCase, stemmer Tracer, metrics http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		uc:      uc,
		router:  chi.NewRouter(),
		logger:  logger,
		started: time.Now(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	h := &handlers{uc: uc, stemmer: stemmer, started: s.started}
	s.router.Get("/healthz", h.health)
	s.router.Post("/words", h.indexWord)
	s.router.Get("/query", h.query)
	s.router.Get("/compare", h.compare)
	s.router.Get("/stem", h.stem)
	s.router.Get("/stats", h.stats)
	if metrics != nil {
		s.router.Handle("/metrics", metrics)
	}

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down and persists the index.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()
	s.logger.Info("server listening", "addr", s.httpSrv.Addr)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("server shutdown", "error", err)
	}
	return s.uc.Persist()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
