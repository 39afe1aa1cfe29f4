// Package server exposes the advisory pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketing-advisor/internal/advisor"
	"marketing-advisor/internal/common/config"
	"marketing-advisor/internal/common/logger"
)

// Server manages the HTTP server and routes.
type Server struct {
	agent  *advisor.Agent
	log    logger.Logger
	router *http.ServeMux
	server *http.Server
}

// New creates the HTTP server around an agent.
func New(cfg config.ServerConfig, agent *advisor.Agent, log logger.Logger) *Server {
	s := &Server{
		agent: agent,
		log:   log.WithFields(map[string]interface{}{"component": "server"}),
	}

	s.router = s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  durationOrDefault(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout: durationOrDefault(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func durationOrDefault(ms int, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/v1/content/social-post", s.handleSocialPost)
	mux.HandleFunc("POST /api/v1/content/email-campaign", s.handleEmailCampaign)
	mux.HandleFunc("POST /api/v1/content/campaign-strategy", s.handleCampaignStrategy)
	mux.HandleFunc("POST /api/v1/content/seo-recommendations", s.handleSEORecommendations)
	mux.HandleFunc("POST /api/v1/content/market-trends", s.handleMarketTrends)
	mux.HandleFunc("GET /api/v1/history", s.handleHistory)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// Handler returns the fully wrapped handler; used by tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.log.Info("HTTP server starting", map[string]interface{}{"address": s.server.Addr})

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server", nil)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
