package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sozercan/promptlens/internal/analyzer"
	"github.com/sozercan/promptlens/internal/config"
	"github.com/sozercan/promptlens/web"
)

const (
	shutdownTimeout = 30 * time.Second

	// room left inside the write timeout to send the provider error back
	responseMargin = 5 * time.Second
)

type Server struct {
	cfg             config.ServerConfig
	server          *http.Server
	router          *chi.Mux
	analyzer        *analyzer.Analyzer
	providerTimeout time.Duration
}

func New(cfg config.Config, analyzer *analyzer.Analyzer) (*Server, error) {
	s := &Server{
		cfg:             cfg.Server,
		router:          chi.NewRouter(),
		analyzer:        analyzer,
		providerTimeout: providerTimeout(cfg.Server.WriteTimeout),
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(loggingMiddleware)
	s.router.Use(middleware.Recoverer)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/inspect", s.handleInspect)
		r.Get("/models", s.handleModels)
		r.Get("/health", s.handleHealth)
	})

	// Single page UI
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static filesystem: %w", err)
	}
	s.router.Handle("/*", http.FileServer(http.FS(static)))

	return nil
}

// providerTimeout bounds the provider call so it ends before the server's write
// deadline and the failure still reaches the client. Zero means no bound.
func providerTimeout(writeTimeout time.Duration) time.Duration {
	if writeTimeout <= 0 {
		return 0
	}
	if writeTimeout > 2*responseMargin {
		return writeTimeout - responseMargin
	}
	return writeTimeout / 2
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		slog.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run serves until the listener fails or SIGINT/SIGTERM arrives, then drains
// in-flight requests.
func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

// Custom response writer to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}
