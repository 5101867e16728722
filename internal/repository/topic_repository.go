package repository

import (
	"context"

	"github.com/pressroom/news-service/internal/domain"
)

// TopicRepository manages topic creation and listing.
type TopicRepository interface {
	// List retrieves all topics ordered by slug.
	List(ctx context.Context) ([]*domain.Topic, error)

	// Create inserts a new topic.
	// Returns domain.ErrAlreadyExists if the slug is already taken.
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}
