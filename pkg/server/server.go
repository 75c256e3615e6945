package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flashbar-dev/flashbar/pkg/middleware"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/toast"
)

// Server is the HTTP/WebSocket server for flashbar.
type Server struct {
	config     *Config
	logger     *slog.Logger
	hub        *Hub
	metrics    *middleware.Metrics
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server with the given configuration. A nil config uses
// DefaultConfig; zero fields are filled with defaults.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.fillDefaults()
	}

	logger := slog.Default().With("component", "server")
	metrics := middleware.Prometheus()

	hub := NewHub(config, logger)
	hub.SetStats(metrics)

	s := &Server{
		config:  config,
		logger:  logger,
		hub:     hub,
		metrics: metrics,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(middleware.OpenTelemetry())

	r.Get("/", s.handlePreview)
	r.Get("/ws", s.hub.ServeWS)
	r.Post("/toast", s.handleToast)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// Hub returns the WebSocket hub. It implements toast.Emitter.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// toastRequest is the POST /toast body.
type toastRequest struct {
	Severity string `json:"severity"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message"`
}

// handleToast accepts a JSON toast request and broadcasts it to all
// connected clients.
func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	var req toastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	severity := status.Severity(req.Severity)
	if !severity.Valid() {
		http.Error(w, "invalid severity", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	if req.Title != "" {
		toast.WithTitle(s.hub, severity, req.Title, req.Message)
	} else {
		toast.Show(s.hub, severity, req.Message)
	}
	middleware.TraceToast(r.Context(), severity, req.Message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"delivered": s.hub.ClientCount(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.ClientCount(),
	})
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.hub.Close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
