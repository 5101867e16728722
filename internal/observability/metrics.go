package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the news service.
// Metrics cover the HTTP layer (request counts and latencies), per-resource
// write activity (articles, comments, topics, votes), and database health.
// All counters and histograms are registered via promauto for automatic
// registration with the default Prometheus registry.
type Metrics struct {
	// RequestsTotal counts HTTP requests, labeled by method, route pattern, and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes HTTP request duration in seconds, labeled by method and route pattern.
	RequestDuration *prometheus.HistogramVec

	// RequestsInFlight tracks the number of HTTP requests currently being served.
	RequestsInFlight prometheus.Gauge

	// ArticlesCreated counts articles created through the API.
	ArticlesCreated prometheus.Counter

	// ArticlesDeleted counts articles deleted through the API.
	ArticlesDeleted prometheus.Counter

	// CommentsCreated counts comments posted through the API.
	CommentsCreated prometheus.Counter

	// CommentsDeleted counts comments deleted through the API.
	CommentsDeleted prometheus.Counter

	// TopicsCreated counts topics created through the API.
	TopicsCreated prometheus.Counter

	// VotesAdjusted counts vote adjustments, labeled by entity (article, comment).
	VotesAdjusted *prometheus.CounterVec

	// QueryDuration observes repository query duration in seconds, labeled by operation.
	QueryDuration *prometheus.HistogramVec

	// QueryErrors counts repository query failures, labeled by operation.
	QueryErrors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		// HTTP
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route, and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds by method and route",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		RequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),

		// Resources
		ArticlesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_created_total",
			Help:      "Total number of articles created",
		}),
		ArticlesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_deleted_total",
			Help:      "Total number of articles deleted",
		}),
		CommentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comments_created_total",
			Help:      "Total number of comments created",
		}),
		CommentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comments_deleted_total",
			Help:      "Total number of comments deleted",
		}),
		TopicsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topics_created_total",
			Help:      "Total number of topics created",
		}),
		VotesAdjusted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_adjusted_total",
			Help:      "Total number of vote adjustments by entity",
		}, []string{"entity"}),

		// Database
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of repository queries in seconds by operation",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Total number of repository query failures by operation",
		}, []string{"operation"}),
	}
}

// RecordRequest records a completed HTTP request.
func (m *Metrics) RecordRequest(method, route, status string, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordArticleCreated records that an article was created.
func (m *Metrics) RecordArticleCreated() {
	m.ArticlesCreated.Inc()
}

// RecordArticleDeleted records that an article was deleted.
func (m *Metrics) RecordArticleDeleted() {
	m.ArticlesDeleted.Inc()
}

// RecordCommentCreated records that a comment was posted.
func (m *Metrics) RecordCommentCreated() {
	m.CommentsCreated.Inc()
}

// RecordCommentDeleted records that a comment was deleted.
func (m *Metrics) RecordCommentDeleted() {
	m.CommentsDeleted.Inc()
}

// RecordTopicCreated records that a topic was created.
func (m *Metrics) RecordTopicCreated() {
	m.TopicsCreated.Inc()
}

// RecordVotesAdjusted records a vote adjustment on an entity.
func (m *Metrics) RecordVotesAdjusted(entity string) {
	m.VotesAdjusted.WithLabelValues(entity).Inc()
}

// RecordQuery records a repository query and its outcome.
func (m *Metrics) RecordQuery(operation string, durationSeconds float64, err error) {
	m.QueryDuration.WithLabelValues(operation).Observe(durationSeconds)
	if err != nil {
		m.QueryErrors.WithLabelValues(operation).Inc()
	}
}
