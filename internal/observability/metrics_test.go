package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: prometheus/promauto registers metrics globally, so we need to use
// unique namespaces per test to avoid registration conflicts.

func TestNewMetrics(t *testing.T) {
	// Use unique namespace to avoid conflicts with other tests
	m := NewMetrics("test_news_service_new")

	assert.NotNil(t, m.RequestsTotal)
	assert.NotNil(t, m.RequestDuration)
	assert.NotNil(t, m.RequestsInFlight)
	assert.NotNil(t, m.ArticlesCreated)
	assert.NotNil(t, m.ArticlesDeleted)
	assert.NotNil(t, m.CommentsCreated)
	assert.NotNil(t, m.CommentsDeleted)
	assert.NotNil(t, m.TopicsCreated)
	assert.NotNil(t, m.VotesAdjusted)
	assert.NotNil(t, m.QueryDuration)
	assert.NotNil(t, m.QueryErrors)
}

func TestRecordRequest(t *testing.T) {
	m := NewMetrics("test_record_request")

	m.RecordRequest("GET", "/api/articles", "200", 0.05)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/articles", "200")))

	histCount, err := getHistogramSampleCount(m.RequestDuration.WithLabelValues("GET", "/api/articles").(prometheus.Histogram))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), histCount)
}

func TestRecordArticleCreated(t *testing.T) {
	m := NewMetrics("test_article_created")

	initial := testutil.ToFloat64(m.ArticlesCreated)
	m.RecordArticleCreated()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.ArticlesCreated))
}

func TestRecordArticleDeleted(t *testing.T) {
	m := NewMetrics("test_article_deleted")

	initial := testutil.ToFloat64(m.ArticlesDeleted)
	m.RecordArticleDeleted()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.ArticlesDeleted))
}

func TestRecordCommentCreated(t *testing.T) {
	m := NewMetrics("test_comment_created")

	initial := testutil.ToFloat64(m.CommentsCreated)
	m.RecordCommentCreated()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.CommentsCreated))
}

func TestRecordCommentDeleted(t *testing.T) {
	m := NewMetrics("test_comment_deleted")

	initial := testutil.ToFloat64(m.CommentsDeleted)
	m.RecordCommentDeleted()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.CommentsDeleted))
}

func TestRecordTopicCreated(t *testing.T) {
	m := NewMetrics("test_topic_created")

	initial := testutil.ToFloat64(m.TopicsCreated)
	m.RecordTopicCreated()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.TopicsCreated))
}

func TestRecordVotesAdjusted(t *testing.T) {
	m := NewMetrics("test_votes_adjusted")

	m.RecordVotesAdjusted("article")
	m.RecordVotesAdjusted("comment")
	m.RecordVotesAdjusted("comment")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.VotesAdjusted.WithLabelValues("article")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.VotesAdjusted.WithLabelValues("comment")))
}

func TestRecordQuery(t *testing.T) {
	m := NewMetrics("test_record_query")

	m.RecordQuery("articles.list", 0.01, nil)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.QueryErrors.WithLabelValues("articles.list")))

	m.RecordQuery("articles.list", 0.02, errors.New("connection reset"))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueryErrors.WithLabelValues("articles.list")))

	histCount, err := getHistogramSampleCount(m.QueryDuration.WithLabelValues("articles.list").(prometheus.Histogram))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), histCount)
}

// Helper to get histogram sample count
func getHistogramSampleCount(h prometheus.Histogram) (uint64, error) {
	ch := make(chan prometheus.Metric, 1)
	h.Collect(ch)
	close(ch)

	var m prometheus.Metric
	for m = range ch {
		break
	}

	var dto = &dto.Metric{}
	if err := m.Write(dto); err != nil {
		return 0, err
	}

	return dto.Histogram.GetSampleCount(), nil
}
