package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
	"github.com/pressroom/news-service/internal/repository"
)

// Hand-written mocks satisfying the repository interfaces. Each method
// delegates to an optional fn field; a nil field fails the test if called.

type mockArticleRepo struct {
	t                *testing.T
	getByIDFn        func(ctx context.Context, id int64) (*domain.Article, error)
	listFn           func(ctx context.Context, opts repository.ListArticlesOptions) ([]*domain.Article, int64, error)
	createFn         func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	incrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	if m.getByIDFn == nil {
		m.t.Fatal("unexpected ArticleRepository.GetByID call")
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockArticleRepo) List(ctx context.Context, opts repository.ListArticlesOptions) ([]*domain.Article, int64, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected ArticleRepository.List call")
	}
	return m.listFn(ctx, opts)
}

func (m *mockArticleRepo) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected ArticleRepository.Create call")
	}
	return m.createFn(ctx, article)
}

func (m *mockArticleRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	if m.incrementVotesFn == nil {
		m.t.Fatal("unexpected ArticleRepository.IncrementVotes call")
	}
	return m.incrementVotesFn(ctx, id, delta)
}

func (m *mockArticleRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		m.t.Fatal("unexpected ArticleRepository.Delete call")
	}
	return m.deleteFn(ctx, id)
}

type mockCommentRepo struct {
	t                *testing.T
	listByArticleFn  func(ctx context.Context, articleID int64, page, limit int) ([]*domain.Comment, error)
	createFn         func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	incrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockCommentRepo) ListByArticle(ctx context.Context, articleID int64, page, limit int) ([]*domain.Comment, error) {
	if m.listByArticleFn == nil {
		m.t.Fatal("unexpected CommentRepository.ListByArticle call")
	}
	return m.listByArticleFn(ctx, articleID, page, limit)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected CommentRepository.Create call")
	}
	return m.createFn(ctx, comment)
}

func (m *mockCommentRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	if m.incrementVotesFn == nil {
		m.t.Fatal("unexpected CommentRepository.IncrementVotes call")
	}
	return m.incrementVotesFn(ctx, id, delta)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		m.t.Fatal("unexpected CommentRepository.Delete call")
	}
	return m.deleteFn(ctx, id)
}

type mockTopicRepo struct {
	t        *testing.T
	listFn   func(ctx context.Context) ([]*domain.Topic, error)
	createFn func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

func (m *mockTopicRepo) List(ctx context.Context) ([]*domain.Topic, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected TopicRepository.List call")
	}
	return m.listFn(ctx)
}

func (m *mockTopicRepo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected TopicRepository.Create call")
	}
	return m.createFn(ctx, topic)
}

type mockUserRepo struct {
	t               *testing.T
	listFn          func(ctx context.Context) ([]*domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected UserRepository.List call")
	}
	return m.listFn(ctx)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn == nil {
		m.t.Fatal("unexpected UserRepository.GetByUsername call")
	}
	return m.getByUsernameFn(ctx, username)
}

// testMocks bundles one mock per repository.
type testMocks struct {
	articles *mockArticleRepo
	comments *mockCommentRepo
	topics   *mockTopicRepo
	users    *mockUserRepo
}

// newTestServer builds a server over fresh mocks with a nop logger and
// metrics collection disabled.
func newTestServer(t *testing.T) (*Server, *testMocks) {
	t.Helper()

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
		nil,
	)

	return srv, mocks
}

// doRequest performs an in-memory request against the server's router.
func doRequest(t *testing.T, srv *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

// decodeResponse unmarshals a recorded JSON body into dst.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// assertErrorBody asserts the stable {"msg": ...} error payload.
func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, msg, body["msg"])
}

func TestGetEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body endpointsEnvelope
	decodeResponse(t, rec, &body)
	require.NotEmpty(t, body.Endpoints)
	assert.Contains(t, body.Endpoints, "GET /api/articles")
	assert.Contains(t, body.Endpoints, "POST /api/articles/:article_id/comments")
	assert.Equal(t, []string{"topic", "sort_by", "order", "p", "limit"}, body.Endpoints["GET /api/articles"].Queries)
}

func TestPageNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("unknown route", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/nope", nil)
		assertErrorBody(t, rec, http.StatusNotFound, "Page not found")
	})

	t.Run("unsupported method", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/api/topics", nil)
		assertErrorBody(t, rec, http.StatusNotFound, "Page not found")
	})
}
