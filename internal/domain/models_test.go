package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArticle(t *testing.T) {
	t.Run("applies image placeholder when absent", func(t *testing.T) {
		a := NewArticle("Title", "Body", "coding", "butter_bridge", "")
		assert.Equal(t, DefaultArticleImageURL, a.ArticleImgURL)
	})

	t.Run("keeps supplied image URL", func(t *testing.T) {
		a := NewArticle("Title", "Body", "coding", "butter_bridge", "https://example.com/pic.jpg")
		assert.Equal(t, "https://example.com/pic.jpg", a.ArticleImgURL)
	})

	t.Run("trims identifier fields but not body", func(t *testing.T) {
		a := NewArticle("  Title  ", "  body text ", " coding ", " butter_bridge ", "")
		assert.Equal(t, "Title", a.Title)
		assert.Equal(t, "coding", a.Topic)
		assert.Equal(t, "butter_bridge", a.Author)
		assert.Equal(t, "  body text ", a.Body)
	})
}
