package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
	"github.com/pressroom/news-service/internal/observability"
)

func TestRequestMetricsMiddleware(t *testing.T) {
	metrics := observability.NewMetrics("test_news_service_http")

	mocks := &testMocks{
		articles: &mockArticleRepo{t: t},
		comments: &mockCommentRepo{t: t},
		topics:   &mockTopicRepo{t: t},
		users:    &mockUserRepo{t: t},
	}

	srv := NewServer(
		Config{DefaultPageSize: 10, MaxPageSize: 100},
		mocks.articles,
		mocks.comments,
		mocks.topics,
		mocks.users,
		nil,
		zerolog.Nop(),
		metrics,
	)

	var inFlightDuring float64
	mocks.topics.listFn = func(ctx context.Context) ([]*domain.Topic, error) {
		inFlightDuring = testutil.ToFloat64(metrics.RequestsInFlight)
		return []*domain.Topic{}, nil
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/topics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(1), inFlightDuring, "gauge should be raised while the handler runs")
	assert.Zero(t, testutil.ToFloat64(metrics.RequestsInFlight), "gauge should return to zero afterwards")
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/api/topics", "200")))
}
