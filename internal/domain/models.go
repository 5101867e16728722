// Package domain defines the core entities and error taxonomy for the news service.
package domain

import (
	"strings"
	"time"
)

// DefaultArticleImageURL is applied when a new article is created without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a category that articles belong to, identified by its slug.
type Topic struct {
	// Slug is the unique, URL-safe identifier for the topic.
	Slug string

	// Description is optional human-readable text about the topic.
	Description string
}

// User is a registered author. Users are read-only through the API surface.
type User struct {
	// Username is the unique identifier for the user.
	Username string

	// Name is the user's display name.
	Name string

	// AvatarURL points to the user's avatar image.
	AvatarURL string
}

// Article is a published piece of writing, tied to one topic and one author.
type Article struct {
	// ArticleID is the generated surrogate key.
	ArticleID int64

	// Title is the article headline.
	Title string

	// Body is the full article text. Collection listings leave it empty.
	Body string

	// Topic references an existing Topic slug.
	Topic string

	// Author references an existing User username.
	Author string

	// CreatedAt is set at insert time and never changes.
	CreatedAt time.Time

	// Votes is a counter mutated only by relative increments. It may go negative.
	Votes int

	// ArticleImgURL is the article image, defaulted when absent at creation.
	ArticleImgURL string

	// CommentCount is the number of comments referencing this article,
	// computed at read time. It is not stored.
	CommentCount int64
}

// Comment is a user's comment on an article.
type Comment struct {
	// CommentID is the generated surrogate key.
	CommentID int64

	// Body is the comment text.
	Body string

	// Author references an existing User username.
	Author string

	// ArticleID references the parent article.
	ArticleID int64

	// Votes is a counter mutated only by relative increments.
	Votes int

	// CreatedAt is set at insert time and never changes.
	CreatedAt time.Time
}

// NewArticle assembles an article for insertion, trimming free-text fields
// and applying the image placeholder when no URL was supplied.
func NewArticle(title, body, topic, author, imgURL string) Article {
	if strings.TrimSpace(imgURL) == "" {
		imgURL = DefaultArticleImageURL
	}
	return Article{
		Title:         strings.TrimSpace(title),
		Body:          body,
		Topic:         strings.TrimSpace(topic),
		Author:        strings.TrimSpace(author),
		ArticleImgURL: imgURL,
	}
}
