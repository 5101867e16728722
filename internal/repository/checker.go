package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/pressroom/news-service/internal/domain"
)

// Checker verifies that referenced entities exist before dependent reads or
// writes. Each probe is a minimal single-row lookup by primary key.
type Checker interface {
	// ArticleExists returns nil when the article exists,
	// domain.ErrNotFound otherwise.
	ArticleExists(ctx context.Context, id int64) error

	// CommentExists returns nil when the comment exists,
	// domain.ErrNotFound otherwise.
	CommentExists(ctx context.Context, id int64) error

	// TopicExists returns nil when the topic exists,
	// domain.ErrNotFound otherwise.
	TopicExists(ctx context.Context, slug string) error

	// UserExists returns nil when the user exists,
	// domain.ErrNotFound otherwise.
	UserExists(ctx context.Context, username string) error

	// TopicAvailable is the inverse probe used for create-if-absent: it
	// returns nil when the slug is free and domain.ErrAlreadyExists when a
	// topic with the slug is already present.
	TopicAvailable(ctx context.Context, slug string) error
}

// Compile-time interface verification.
var _ Checker = (*PgChecker)(nil)

// PgChecker is a PostgreSQL implementation of Checker.
type PgChecker struct {
	db DBTX
}

// NewPgChecker creates a new PostgreSQL existence checker.
func NewPgChecker(db DBTX) *PgChecker {
	return &PgChecker{db: db}
}

// ArticleExists probes for an article by id.
func (c *PgChecker) ArticleExists(ctx context.Context, id int64) error {
	return c.exists(ctx,
		"SELECT 1 FROM articles WHERE article_id = $1",
		domain.EntityArticle, strconv.FormatInt(id, 10), id)
}

// CommentExists probes for a comment by id.
func (c *PgChecker) CommentExists(ctx context.Context, id int64) error {
	return c.exists(ctx,
		"SELECT 1 FROM comments WHERE comment_id = $1",
		domain.EntityComment, strconv.FormatInt(id, 10), id)
}

// TopicExists probes for a topic by slug.
func (c *PgChecker) TopicExists(ctx context.Context, slug string) error {
	return c.exists(ctx,
		"SELECT 1 FROM topics WHERE slug = $1",
		domain.EntityTopic, slug, slug)
}

// UserExists probes for a user by username.
func (c *PgChecker) UserExists(ctx context.Context, username string) error {
	return c.exists(ctx,
		"SELECT 1 FROM users WHERE username = $1",
		domain.EntityUser, username, username)
}

// TopicAvailable probes that no topic holds the slug yet.
func (c *PgChecker) TopicAvailable(ctx context.Context, slug string) error {
	var one int
	err := c.db.QueryRow(ctx, "SELECT 1 FROM topics WHERE slug = $1", slug).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to check topic availability: %w", err)
	}
	return domain.NewAlreadyExistsError(domain.EntityTopic, slug)
}

func (c *PgChecker) exists(ctx context.Context, query string, entity domain.Entity, key string, arg interface{}) error {
	var one int
	err := c.db.QueryRow(ctx, query, arg).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError(entity, key)
		}
		return fmt.Errorf("failed to check %s existence: %w", entity, err)
	}
	return nil
}
