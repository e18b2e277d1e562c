package webui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ledgerui/internal/config"
	"ledgerui/internal/logger"
	"ledgerui/pkg/ledger"

	"github.com/go-chi/chi/v5"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     logger.AppLogger
}

// NewServer creates a new instance of the web UI server.
func NewServer(page *Page, service ledger.Ledger, appLogger logger.AppLogger, cfg *config.ServerConfig) (*Server, error) {
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(page, service, appLogger, cfg.PageRefreshSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           NewRouter(h),
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		logger:     appLogger,
	}, nil
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// NewRouter registers every page and API route on a chi router.
func NewRouter(h *HTTPHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HandleHealth)
	r.Get("/", h.HandlePage)
	r.Get("/transactions/list", h.HandleList)
	r.Post("/transactions", h.HandleSubmit)
	r.Post("/transactions/{id}/edit", h.HandleEdit)
	r.Post("/transactions/{id}/delete", h.HandleDelete)
	r.Post("/form/reset", h.HandleResetForm)
	r.Get("/api/transactions", h.HandleGetTransactions)

	return r
}
