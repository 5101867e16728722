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
var _ ArticleRepository = (*PgArticleRepository)(nil)

// PgArticleRepository is a PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	db      DBTX
	checker Checker
}

// NewPgArticleRepository creates a new PostgreSQL article repository.
func NewPgArticleRepository(db DBTX) *PgArticleRepository {
	return &PgArticleRepository{db: db, checker: NewPgChecker(db)}
}

// GetByID retrieves an article by its id, including its aggregated comment count.
func (r *PgArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.body, articles.topic,
			articles.author, articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`

	var article domain.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Body,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityArticle, strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get article by ID: %w", err)
	}

	return &article, nil
}

// List retrieves articles matching the options, plus the total count of rows
// matching the topic filter independent of pagination. Listing rows carry an
// empty body; the full text is only returned by GetByID.
func (r *PgArticleRepository) List(ctx context.Context, opts ListArticlesOptions) ([]*domain.Article, int64, error) {
	if err := opts.NormalizePaging(); err != nil {
		return nil, 0, err
	}

	// The topic probe runs before sort validation so a request that is
	// wrong on both counts reports the missing topic.
	if opts.Topic != "" {
		if err := r.checker.TopicExists(ctx, opts.Topic); err != nil {
			return nil, 0, err
		}
	}

	if err := opts.NormalizeSort(); err != nil {
		return nil, 0, err
	}

	// Count query first so the total reflects the filtered set regardless
	// of pagination.
	countBuilder := psql.Select("COUNT(*)").From("articles")
	if opts.Topic != "" {
		countBuilder = countBuilder.Where(squirrel.Eq{"topic": opts.Topic})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	// Sort column and direction come from the allow-list in Normalize, so
	// interpolating them as identifiers is safe. Every value is still bound.
	orderBy := "articles." + opts.SortBy
	if opts.SortBy == "comment_count" {
		orderBy = "comment_count"
	}

	selectBuilder := psql.Select(
		"articles.article_id",
		"articles.title",
		"articles.topic",
		"articles.author",
		"articles.created_at",
		"articles.votes",
		"articles.article_img_url",
		"COUNT(comments.comment_id) AS comment_count",
	).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id").
		OrderBy(orderBy + " " + strings.ToUpper(opts.Order)).
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset()))
	if opts.Topic != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"articles.topic": opts.Topic})
	}

	selectQuery, selectArgs, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, selectArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0, opts.Limit)
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.CreatedAt,
			&article.Votes,
			&article.ArticleImgURL,
			&article.CommentCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating articles: %w", err)
	}

	return articles, totalCount, nil
}

// Create inserts a new article after verifying the author and topic exist,
// in that order.
func (r *PgArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article == nil {
		return nil, domain.NewValidationError("article", "article cannot be nil")
	}

	if err := r.checker.UserExists(ctx, article.Author); err != nil {
		return nil, err
	}
	if err := r.checker.TopicExists(ctx, article.Topic); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO articles (title, body, topic, author, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, created_at, votes`

	err := r.db.QueryRow(ctx, query,
		article.Title,
		article.Body,
		article.Topic,
		article.Author,
		article.ArticleImgURL,
	).Scan(&article.ArticleID, &article.CreatedAt, &article.Votes)
	if err != nil {
		// The referenced row can vanish between the probe and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "topic") {
				return nil, domain.NewNotFoundError(domain.EntityTopic, article.Topic)
			}
			return nil, domain.NewNotFoundError(domain.EntityUser, article.Author)
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	article.CommentCount = 0
	return article, nil
}

// IncrementVotes adjusts an article's vote counter by a signed delta and
// returns the updated article.
func (r *PgArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, body, topic, author, created_at, votes, article_img_url`

	var article domain.Article
	err := r.db.QueryRow(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Body,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityArticle, strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to increment article votes: %w", err)
	}

	return &article, nil
}

// Delete removes an article by id. The store cascades the delete to the
// article's comments.
func (r *PgArticleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM articles WHERE article_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityArticle, strconv.FormatInt(id, 10))
	}

	return nil
}
