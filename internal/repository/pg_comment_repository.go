package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pressroom/news-service/internal/domain"
)

// Compile-time interface verification.
var _ CommentRepository = (*PgCommentRepository)(nil)

// PgCommentRepository is a PostgreSQL implementation of CommentRepository.
type PgCommentRepository struct {
	db      DBTX
	checker Checker
}

// NewPgCommentRepository creates a new PostgreSQL comment repository.
func NewPgCommentRepository(db DBTX) *PgCommentRepository {
	return &PgCommentRepository{db: db, checker: NewPgChecker(db)}
}

// ListByArticle retrieves a page of comments for an article, newest first.
// The ordering is fixed; comments expose no sort parameter.
func (r *PgCommentRepository) ListByArticle(ctx context.Context, articleID int64, page, limit int) ([]*domain.Comment, error) {
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return nil, domain.NewValidationError("p", "page must be positive")
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 {
		return nil, domain.NewValidationError("limit", "limit must be positive")
	}

	if err := r.checker.ArticleExists(ctx, articleID); err != nil {
		return nil, err
	}

	query, args, err := psql.Select(
		"comment_id", "body", "author", "article_id", "votes", "created_at",
	).
		From("comments").
		Where(squirrel.Eq{"article_id": articleID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(limit * (page - 1))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0, limit)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.CommentID,
			&comment.Body,
			&comment.Author,
			&comment.ArticleID,
			&comment.Votes,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Create inserts a new comment after verifying the article and author exist,
// in that order.
func (r *PgCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil {
		return nil, domain.NewValidationError("comment", "comment cannot be nil")
	}

	if err := r.checker.ArticleExists(ctx, comment.ArticleID); err != nil {
		return nil, err
	}
	if err := r.checker.UserExists(ctx, comment.Author); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, created_at, votes`

	err := r.db.QueryRow(ctx, query,
		comment.Body,
		comment.Author,
		comment.ArticleID,
	).Scan(&comment.CommentID, &comment.CreatedAt, &comment.Votes)
	if err != nil {
		// The referenced row can vanish between the probe and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "article") {
				return nil, domain.NewNotFoundError(domain.EntityArticle, strconv.FormatInt(comment.ArticleID, 10))
			}
			return nil, domain.NewNotFoundError(domain.EntityUser, comment.Author)
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// IncrementVotes adjusts a comment's vote counter by a signed delta and
// returns the updated comment.
func (r *PgCommentRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, author, article_id, votes, created_at`

	var comment domain.Comment
	err := r.db.QueryRow(ctx, query, delta, id).Scan(
		&comment.CommentID,
		&comment.Body,
		&comment.Author,
		&comment.ArticleID,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityComment, strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to increment comment votes: %w", err)
	}

	return &comment, nil
}

// Delete removes a comment by id.
func (r *PgCommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityComment, strconv.FormatInt(id, 10))
	}

	return nil
}
