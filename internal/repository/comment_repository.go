package repository

import (
	"context"

	"github.com/pressroom/news-service/internal/domain"
)

// CommentRepository manages comments tied to articles.
type CommentRepository interface {
	// ListByArticle retrieves a page of comments for an article, newest first.
	// The parent article is verified first; domain.ErrNotFound is returned
	// when it does not exist. Non-positive page or limit yields
	// domain.ErrInvalidInput. A page past the end yields an empty slice.
	ListByArticle(ctx context.Context, articleID int64, page, limit int) ([]*domain.Comment, error)

	// Create inserts a new comment after verifying the article and author
	// exist, in that order. Returns the inserted comment with its generated
	// id, timestamp, and zero votes.
	// Returns domain.ErrNotFound if the article or author is absent.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// IncrementVotes adjusts a comment's vote counter by a signed delta and
	// returns the updated comment. Votes may go negative.
	// Returns domain.ErrNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes a comment by id.
	// Returns domain.ErrNotFound if the comment does not exist.
	Delete(ctx context.Context, id int64) error
}
