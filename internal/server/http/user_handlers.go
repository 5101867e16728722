package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listUsers handles GET /api/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userRepo.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	responses := make([]userResponse, len(users))
	for i, user := range users {
		responses[i] = userToResponse(user)
	}

	writeJSON(w, http.StatusOK, usersEnvelope{Users: responses})
}

// getUser handles GET /api/users/{username}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := s.userRepo.GetByUsername(r.Context(), username)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: userToResponse(user)})
}
