package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "article not found",
			err:        domain.NewNotFoundError(domain.EntityArticle, "1"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Article not found",
		},
		{
			name:       "comment not found",
			err:        domain.NewNotFoundError(domain.EntityComment, "1"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Comment not found",
		},
		{
			name:       "topic not found",
			err:        domain.NewNotFoundError(domain.EntityTopic, "bananas"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Topic not found",
		},
		{
			name:       "user not found",
			err:        domain.NewNotFoundError(domain.EntityUser, "nobody"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("fetch article: %w", domain.NewNotFoundError(domain.EntityArticle, "1")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Article not found",
		},
		{
			name:       "topic already exists",
			err:        domain.NewAlreadyExistsError(domain.EntityTopic, "mitch"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Topic already exists",
		},
		{
			name:       "validation error",
			err:        domain.NewValidationError("sort_by", "unknown sort column: banana"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Bad request",
		},
		{
			name:       "invalid text representation",
			err:        &pgconn.PgError{Code: "22P02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Bad request",
		},
		{
			name:       "not null violation",
			err:        &pgconn.PgError{Code: "23502"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Bad request",
		},
		{
			name:       "unrecognized pg error",
			err:        &pgconn.PgError{Code: "40001"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "opaque error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["msg"])
		})
	}
}

func TestCorrelationIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("echoes provided id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set("X-Correlation-ID", "abc-123")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("generates id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})
}
