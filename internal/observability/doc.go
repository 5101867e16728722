// Package observability provides logging and metrics support for the news
// service.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Prometheus metrics for the HTTP layer and resource writes
//   - Context helpers for propagating request data
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:     "info",
//	    Format:    "json",
//	    Output:    "stdout",
//	    AddSource: true,
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Int64("article_id", id).Msg("article created")
//
// Add request context to logger:
//
//	logger = observability.WithRequestContext(logger, requestID, method, path)
//
// # Metrics
//
// Initialize metrics:
//
//	metrics := observability.NewMetrics("news_service")
//
// Record metrics:
//
//	metrics.RecordRequest("GET", "/api/articles", "200", 0.012)
//	metrics.RecordArticleCreated()
//	metrics.RecordVotesAdjusted("comment")
//
// # Context Helpers
//
// Store and retrieve request context:
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	reqID := observability.RequestIDFromContext(ctx)
//
// # Standard Fields
//
// Common fields used across the service:
//
//   - request_id: Correlation identifier assigned per HTTP request
//   - method: HTTP method
//   - path: Request path
//   - article_id: Article identifier
//   - comment_id: Comment identifier
//   - username: Author or requester username
//   - topic: Topic slug
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
