package httpserver

import (
	"net/http"
	"strconv"

	"github.com/pressroom/news-service/internal/domain"
	"github.com/pressroom/news-service/internal/repository"
)

// createArticleRequest is the JSON request body for creating an article.
type createArticleRequest struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// updateVotesRequest is the JSON request body for vote adjustments on
// articles and comments. A missing or non-numeric inc_votes yields a 400.
type updateVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

// listArticles handles GET /api/articles.
func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := s.parsePageParams(w, r)
	if !ok {
		return
	}

	opts := repository.ListArticlesOptions{
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
		Topic:  r.URL.Query().Get("topic"),
		Page:   page,
		Limit:  limit,
	}

	articles, totalCount, err := s.articleRepo.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	responses := make([]articleResponse, len(articles))
	for i, article := range articles {
		responses[i] = articleToResponse(article, true)
	}

	writeJSON(w, http.StatusOK, articlesEnvelope{
		Articles:   responses,
		TotalCount: strconv.FormatInt(totalCount, 10),
	})
}

// getArticle handles GET /api/articles/{articleID}.
func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseIDParam(w, r, "articleID")
	if !ok {
		return
	}

	article, err := s.articleRepo.GetByID(r.Context(), articleID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, articleEnvelope{Article: articleToResponse(article, true)})
}

// createArticle handles POST /api/articles.
func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	article := domain.NewArticle(req.Title, req.Body, req.Topic, req.Author, req.ArticleImgURL)
	created, err := s.articleRepo.Create(r.Context(), &article)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordArticleCreated()
	}
	s.logger.Info().
		Int64("article_id", created.ArticleID).
		Str("topic", created.Topic).
		Str("author", created.Author).
		Msg("article created")

	writeJSON(w, http.StatusCreated, articleEnvelope{Article: articleToResponse(created, true)})
}

// updateArticleVotes handles PATCH /api/articles/{articleID}.
func (s *Server) updateArticleVotes(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseIDParam(w, r, "articleID")
	if !ok {
		return
	}

	var req updateVotesRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	article, err := s.articleRepo.IncrementVotes(r.Context(), articleID, *req.IncVotes)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVotesAdjusted("article")
	}

	writeJSON(w, http.StatusOK, articleEnvelope{Article: articleToResponse(article, false)})
}

// deleteArticle handles DELETE /api/articles/{articleID}.
func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseIDParam(w, r, "articleID")
	if !ok {
		return
	}

	if err := s.articleRepo.Delete(r.Context(), articleID); err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordArticleDeleted()
	}
	s.logger.Info().Int64("article_id", articleID).Msg("article deleted")

	w.WriteHeader(http.StatusNoContent)
}
