package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
)

func TestPgUserRepository_List(t *testing.T) {
	t.Run("lists all users", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgUserRepository(mock)
		ctx := context.Background()

		mock.ExpectQuery(`SELECT username, name, avatar_url FROM users ORDER BY username`).
			WillReturnRows(pgxmock.NewRows([]string{"username", "name", "avatar_url"}).
				AddRow("butter_bridge", "jonny", "https://example.com/a.jpg").
				AddRow("icellusedkars", "sam", "https://example.com/b.jpg"))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "butter_bridge", users[0].Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgUserRepository_GetByUsername(t *testing.T) {
	t.Run("returns user when found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgUserRepository(mock)
		ctx := context.Background()

		mock.ExpectQuery(`SELECT username, name, avatar_url FROM users WHERE username = \$1`).
			WithArgs("butter_bridge").
			WillReturnRows(pgxmock.NewRows([]string{"username", "name", "avatar_url"}).
				AddRow("butter_bridge", "jonny", "https://example.com/a.jpg"))

		user, err := repo.GetByUsername(ctx, "butter_bridge")
		require.NoError(t, err)
		assert.Equal(t, "jonny", user.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgUserRepository(mock)
		ctx := context.Background()

		mock.ExpectQuery(`SELECT username, name, avatar_url FROM users WHERE username = \$1`).
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByUsername(ctx, "nobody")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		var nfErr *domain.NotFoundError
		require.True(t, errors.As(err, &nfErr))
		assert.Equal(t, domain.EntityUser, nfErr.Entity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
