package repository

import (
	"context"
	"strings"

	"github.com/pressroom/news-service/internal/domain"
)

// ArticleRepository manages article persistence, vote counters, and the
// sorted/paginated article listing.
type ArticleRepository interface {
	// GetByID retrieves an article by its id, including its aggregated comment count.
	// Returns domain.ErrNotFound if no matching article exists.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// List retrieves articles matching the options, newest first by default.
	// Returns the matching page of articles and the total count of rows matching
	// the topic filter, independent of pagination. A page past the end yields an
	// empty slice with the same total count.
	// Returns domain.ErrInvalidInput for an unknown sort column, order, or
	// non-positive page/limit, and domain.ErrNotFound when the topic filter
	// names a topic that does not exist.
	List(ctx context.Context, opts ListArticlesOptions) ([]*domain.Article, int64, error)

	// Create inserts a new article after verifying the author and topic exist,
	// in that order. The image URL is defaulted when empty.
	// Returns the inserted article with its generated id, timestamp, and zero votes.
	// Returns domain.ErrNotFound if the author or topic is absent.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)

	// IncrementVotes adjusts an article's vote counter by a signed delta and
	// returns the updated article. Votes may go negative.
	// Returns domain.ErrNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)

	// Delete removes an article by id. Comments referencing the article are
	// removed by the store's cascade rule.
	// Returns domain.ErrNotFound if the article does not exist.
	Delete(ctx context.Context, id int64) error
}

// ListArticlesOptions specifies sorting, filtering, and pagination for the
// article listing. The zero value lists the first page of ten articles,
// newest first.
type ListArticlesOptions struct {
	// SortBy is the sort column (default: created_at). Must be one of the
	// sortable columns; anything else is rejected.
	SortBy string

	// Order is the sort direction, asc or desc (default: desc).
	Order string

	// Topic filters to articles in the given topic slug (optional). The total
	// count reflects the filtered set.
	Topic string

	// Page is the 1-based page number (default: 1).
	Page int

	// Limit is the page size (default: 10).
	Limit int
}

// sortableColumns is the allow-list of article sort columns. Only these
// identifiers may ever be interpolated into ORDER BY; everything else in the
// listing query is bound as a parameter.
var sortableColumns = map[string]struct{}{
	"author":          {},
	"title":           {},
	"article_id":      {},
	"created_at":      {},
	"votes":           {},
	"article_img_url": {},
	"comment_count":   {},
}

// Normalize applies defaults and validates the options in place. Sort column
// and order are matched case-insensitively and lowercased. It returns
// domain.ErrInvalidInput for an unknown sort column, an order other than
// asc/desc, or a non-positive page or limit.
//
// Validation happens in two stages so the store can interleave its topic
// existence check: paging first, sort last. A request with both an unknown
// topic and a bad sort column reports the missing topic.
func (o *ListArticlesOptions) Normalize() error {
	if err := o.NormalizePaging(); err != nil {
		return err
	}
	return o.NormalizeSort()
}

// NormalizePaging applies paging defaults and rejects a non-positive page
// or limit.
func (o *ListArticlesOptions) NormalizePaging() error {
	if o.Page == 0 {
		o.Page = DefaultPage
	}
	if o.Page < 1 {
		return domain.NewValidationError("p", "page must be positive")
	}

	if o.Limit == 0 {
		o.Limit = DefaultPageSize
	}
	if o.Limit < 1 {
		return domain.NewValidationError("limit", "limit must be positive")
	}

	return nil
}

// NormalizeSort applies sort defaults and rejects anything outside the
// allow-list.
func (o *ListArticlesOptions) NormalizeSort() error {
	if o.SortBy == "" {
		o.SortBy = "created_at"
	}
	o.SortBy = strings.ToLower(o.SortBy)
	if _, ok := sortableColumns[o.SortBy]; !ok {
		return domain.NewValidationError("sort_by", "unknown sort column: "+o.SortBy)
	}

	if o.Order == "" {
		o.Order = "desc"
	}
	o.Order = strings.ToLower(o.Order)
	if o.Order != "asc" && o.Order != "desc" {
		return domain.NewValidationError("order", "order must be asc or desc")
	}

	return nil
}

// Offset computes the row offset for the normalized page and limit.
func (o *ListArticlesOptions) Offset() int {
	return o.Limit * (o.Page - 1)
}
