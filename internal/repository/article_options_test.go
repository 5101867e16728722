package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
)

func TestListArticlesOptions_Normalize(t *testing.T) {
	t.Run("applies defaults to zero value", func(t *testing.T) {
		var opts ListArticlesOptions
		require.NoError(t, opts.Normalize())

		assert.Equal(t, "created_at", opts.SortBy)
		assert.Equal(t, "desc", opts.Order)
		assert.Equal(t, 1, opts.Page)
		assert.Equal(t, 10, opts.Limit)
		assert.Equal(t, 0, opts.Offset())
	})

	t.Run("accepts every allow-listed column case-insensitively", func(t *testing.T) {
		for _, col := range []string{
			"author", "TITLE", "article_id", "Created_At",
			"votes", "article_img_url", "COMMENT_COUNT",
		} {
			opts := ListArticlesOptions{SortBy: col}
			require.NoError(t, opts.Normalize(), col)
		}
	})

	t.Run("rejects columns outside the allow-list", func(t *testing.T) {
		for _, col := range []string{"time", "body", "created_at; DROP TABLE articles", "votes "} {
			opts := ListArticlesOptions{SortBy: col}
			err := opts.Normalize()
			require.Error(t, err, col)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), col)
		}
	})

	t.Run("rejects order outside asc and desc", func(t *testing.T) {
		opts := ListArticlesOptions{Order: "upward"}
		err := opts.Normalize()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		opts = ListArticlesOptions{Order: "ASC"}
		require.NoError(t, opts.Normalize())
		assert.Equal(t, "asc", opts.Order)
	})

	t.Run("rejects negative page and limit", func(t *testing.T) {
		opts := ListArticlesOptions{Page: -1}
		assert.True(t, errors.Is(opts.Normalize(), domain.ErrInvalidInput))

		opts = ListArticlesOptions{Limit: -10}
		assert.True(t, errors.Is(opts.Normalize(), domain.ErrInvalidInput))
	})

	t.Run("computes offset from page and limit", func(t *testing.T) {
		opts := ListArticlesOptions{Page: 3, Limit: 5}
		require.NoError(t, opts.Normalize())
		assert.Equal(t, 10, opts.Offset())

		opts = ListArticlesOptions{Page: 1, Limit: 50}
		require.NoError(t, opts.Normalize())
		assert.Equal(t, 0, opts.Offset())
	})
}
