package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/news-service/internal/domain"
)

func TestListUsers(t *testing.T) {
	srv, mocks := newTestServer(t)
	mocks.users.listFn = func(ctx context.Context) ([]*domain.User, error) {
		return []*domain.User{
			{
				Username:  "butter_bridge",
				Name:      "jonny",
				AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
			},
			{
				Username:  "icellusedkars",
				Name:      "sam",
				AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
			},
		}, nil
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body usersEnvelope
	decodeResponse(t, rec, &body)
	require.Len(t, body.Users, 2)
	assert.Equal(t, "butter_bridge", body.Users[0].Username)
	assert.Equal(t, "jonny", body.Users[0].Name)
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv, mocks := newTestServer(t)
		mocks.users.getByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			assert.Equal(t, "butter_bridge", username)
			return &domain.User{
				Username:  "butter_bridge",
				Name:      "jonny",
				AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
			}, nil
		}

		rec := doRequest(t, srv, http.MethodGet, "/api/users/butter_bridge", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body userEnvelope
		decodeResponse(t, rec, &body)
		assert.Equal(t, "butter_bridge", body.User.Username)
	})

	t.Run("not found", func(t *testing.T) {
		srv, mocks := newTestServer(t)
		mocks.users.getByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, domain.NewNotFoundError(domain.EntityUser, username)
		}

		rec := doRequest(t, srv, http.MethodGet, "/api/users/nobody", nil)
		assertErrorBody(t, rec, http.StatusNotFound, "User not found")
	})
}
