package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxRequestBodySize limits request bodies to 1 MB.
const maxRequestBodySize = 1 << 20

// endpointDescription documents one route for GET /api.
type endpointDescription struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	BodyFormat  []string `json:"body_format,omitempty"`
}

type endpointsEnvelope struct {
	Endpoints map[string]endpointDescription `json:"endpoints"`
}

// apiEndpoints is the machine-readable description served at GET /api.
var apiEndpoints = map[string]endpointDescription{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "adds a new topic",
		BodyFormat:  []string{"slug", "description"},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles",
		Queries:     []string{"topic", "sort_by", "order", "p", "limit"},
	},
	"POST /api/articles": {
		Description: "adds a new article",
		BodyFormat:  []string{"author", "title", "body", "topic", "article_img_url"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article by id",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts an article's votes by inc_votes",
		BodyFormat:  []string{"inc_votes"},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for an article, newest first",
		Queries:     []string{"p", "limit"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article",
		BodyFormat:  []string{"username", "body"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adjusts a comment's votes by inc_votes",
		BodyFormat:  []string{"inc_votes"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment by id",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user by username",
	},
}

// getEndpoints handles GET /api.
func (s *Server) getEndpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, endpointsEnvelope{Endpoints: apiEndpoints})
}

// parseIDParam extracts a numeric URL parameter. Any value that fails to
// parse as an integer yields a 400, uniformly with every other numeric
// parameter.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad request")
		return 0, false
	}
	return id, true
}

// parsePageParams extracts the p and limit query parameters. Absent values
// fall back to the configured defaults; non-numeric values yield a 400. The
// limit is capped at the configured maximum. Range validation (positive page
// and limit) is left to the repository.
func (s *Server) parsePageParams(w http.ResponseWriter, r *http.Request) (page, limit int, ok bool) {
	page = 1
	limit = s.defaultPageSize

	if raw := r.URL.Query().Get("p"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return 0, 0, false
		}
		page = parsed
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return 0, 0, false
		}
		limit = parsed
	}

	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	return page, limit, true
}

// decodeBody parses a JSON request body into dst and validates it. A body
// that fails to parse or validate yields a 400.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad request")
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request")
		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request")
		return false
	}

	return true
}
