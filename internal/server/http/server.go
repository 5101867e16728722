// Package httpserver provides the HTTP REST API server for the news service.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pressroom/news-service/internal/database"
	"github.com/pressroom/news-service/internal/observability"
	"github.com/pressroom/news-service/internal/repository"
)

// Server is the HTTP REST API server.
type Server struct {
	router      chi.Router
	httpServer  *http.Server
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
	topicRepo   repository.TopicRepository
	userRepo    repository.UserRepository
	db          *database.DB
	logger      zerolog.Logger
	metrics     *observability.Metrics
	validate    *validator.Validate

	defaultPageSize int
	maxPageSize     int
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// DefaultPageSize is used when a listing request has no limit parameter.
	DefaultPageSize int

	// MaxPageSize caps the limit parameter.
	MaxPageSize int
}

// NewServer creates a new HTTP server with all dependencies.
// The metrics parameter may be nil when metrics collection is disabled.
func NewServer(
	cfg Config,
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	topicRepo repository.TopicRepository,
	userRepo repository.UserRepository,
	db *database.DB,
	logger zerolog.Logger,
	metrics *observability.Metrics,
) *Server {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = repository.DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	s := &Server{
		articleRepo:     articleRepo,
		commentRepo:     commentRepo,
		topicRepo:       topicRepo,
		userRepo:        userRepo,
		db:              db,
		logger:          logger.With().Str("component", "http-server").Logger(),
		metrics:         metrics,
		validate:        validator.New(),
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.correlationIDMiddleware)
	r.Use(s.requestLoggerMiddleware)
	r.Use(jsonContentTypeMiddleware)

	// Health endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.getEndpoints)

		r.Get("/topics", s.listTopics)
		r.Post("/topics", s.createTopic)

		r.Get("/articles", s.listArticles)
		r.Post("/articles", s.createArticle)
		r.Get("/articles/{articleID}", s.getArticle)
		r.Patch("/articles/{articleID}", s.updateArticleVotes)
		r.Delete("/articles/{articleID}", s.deleteArticle)
		r.Get("/articles/{articleID}/comments", s.listArticleComments)
		r.Post("/articles/{articleID}/comments", s.createArticleComment)

		r.Patch("/comments/{commentID}", s.updateCommentVotes)
		r.Delete("/comments/{commentID}", s.deleteComment)

		r.Get("/users", s.listUsers)
		r.Get("/users/{username}", s.getUser)
	})

	// Unmatched routes and methods share one stable payload.
	r.NotFound(s.pageNotFound)
	r.MethodNotAllowed(s.pageNotFound)

	return r
}

// Router returns the underlying chi router, primarily for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// pageNotFound answers unmatched routes.
func (s *Server) pageNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Page not found")
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler returns readiness status including pool statistics.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; the failure can only be logged.
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

// writeError writes a JSON error response in the stable {"msg": ...} shape.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"msg": message,
	})
}
