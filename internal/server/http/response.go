package httpserver

import (
	"strconv"
	"time"

	"github.com/pressroom/news-service/internal/domain"
)

// Response types for JSON serialization. Counts derived by aggregation
// (comment_count, total_count) are serialized as stringified integers.

type topicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type userResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type articleResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body,omitempty"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  string    `json:"comment_count,omitempty"`
}

type commentResponse struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	ArticleID int64     `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Envelope types. Every success body wraps its resource under a stable key.

type topicEnvelope struct {
	Topic topicResponse `json:"topic"`
}

type topicsEnvelope struct {
	Topics []topicResponse `json:"topics"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type usersEnvelope struct {
	Users []userResponse `json:"users"`
}

type articleEnvelope struct {
	Article articleResponse `json:"article"`
}

type articlesEnvelope struct {
	Articles   []articleResponse `json:"articles"`
	TotalCount string            `json:"total_count"`
}

type commentEnvelope struct {
	Comment commentResponse `json:"comment"`
}

type commentsEnvelope struct {
	Comments []commentResponse `json:"comments"`
}

// Converter functions

func topicToResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		Slug:        t.Slug,
		Description: t.Description,
	}
}

func userToResponse(u *domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

// articleToResponse converts an article. Vote updates return the row as
// stored, without the aggregate, so withCount controls whether comment_count
// appears at all.
func articleToResponse(a *domain.Article, withCount bool) articleResponse {
	resp := articleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Body:          a.Body,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
	if withCount {
		resp.CommentCount = strconv.FormatInt(a.CommentCount, 10)
	}
	return resp
}

func commentToResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		CommentID: c.CommentID,
		Body:      c.Body,
		Author:    c.Author,
		ArticleID: c.ArticleID,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}
