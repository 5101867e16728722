package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pressroom/news-service/internal/domain"
)

// Compile-time interface verification.
var _ TopicRepository = (*PgTopicRepository)(nil)

// PgTopicRepository is a PostgreSQL implementation of TopicRepository.
type PgTopicRepository struct {
	db      DBTX
	checker Checker
}

// NewPgTopicRepository creates a new PostgreSQL topic repository.
func NewPgTopicRepository(db DBTX) *PgTopicRepository {
	return &PgTopicRepository{db: db, checker: NewPgChecker(db)}
}

// List retrieves all topics ordered by slug.
func (r *PgTopicRepository) List(ctx context.Context) ([]*domain.Topic, error) {
	rows, err := r.db.Query(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]*domain.Topic, 0)
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, &topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", err)
	}

	return topics, nil
}

// Create inserts a new topic after verifying the slug is free.
func (r *PgTopicRepository) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if topic == nil {
		return nil, domain.NewValidationError("topic", "topic cannot be nil")
	}
	if topic.Slug == "" {
		return nil, domain.NewValidationError("slug", "slug is required")
	}

	if err := r.checker.TopicAvailable(ctx, topic.Slug); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`

	err := r.db.QueryRow(ctx, query, topic.Slug, topic.Description).
		Scan(&topic.Slug, &topic.Description)
	if err != nil {
		// A concurrent create can win the slug between the probe and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.NewAlreadyExistsError(domain.EntityTopic, topic.Slug)
		}
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return topic, nil
}
