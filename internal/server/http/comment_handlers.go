package httpserver

import (
	"net/http"

	"github.com/pressroom/news-service/internal/domain"
)

// createCommentRequest is the JSON request body for posting a comment.
type createCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// listArticleComments handles GET /api/articles/{articleID}/comments.
func (s *Server) listArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseIDParam(w, r, "articleID")
	if !ok {
		return
	}

	page, limit, ok := s.parsePageParams(w, r)
	if !ok {
		return
	}

	comments, err := s.commentRepo.ListByArticle(r.Context(), articleID, page, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	responses := make([]commentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = commentToResponse(comment)
	}

	writeJSON(w, http.StatusOK, commentsEnvelope{Comments: responses})
}

// createArticleComment handles POST /api/articles/{articleID}/comments.
func (s *Server) createArticleComment(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseIDParam(w, r, "articleID")
	if !ok {
		return
	}

	var req createCommentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	comment := &domain.Comment{
		Body:      req.Body,
		Author:    req.Username,
		ArticleID: articleID,
	}

	created, err := s.commentRepo.Create(r.Context(), comment)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCommentCreated()
	}
	s.logger.Info().
		Int64("comment_id", created.CommentID).
		Int64("article_id", articleID).
		Str("author", created.Author).
		Msg("comment created")

	writeJSON(w, http.StatusCreated, commentEnvelope{Comment: commentToResponse(created)})
}

// updateCommentVotes handles PATCH /api/comments/{commentID}.
func (s *Server) updateCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseIDParam(w, r, "commentID")
	if !ok {
		return
	}

	var req updateVotesRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	comment, err := s.commentRepo.IncrementVotes(r.Context(), commentID, *req.IncVotes)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVotesAdjusted("comment")
	}

	writeJSON(w, http.StatusOK, commentEnvelope{Comment: commentToResponse(comment)})
}

// deleteComment handles DELETE /api/comments/{commentID}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseIDParam(w, r, "commentID")
	if !ok {
		return
	}

	if err := s.commentRepo.Delete(r.Context(), commentID); err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCommentDeleted()
	}
	s.logger.Info().Int64("comment_id", commentID).Msg("comment deleted")

	w.WriteHeader(http.StatusNoContent)
}
