package httpserver

import (
	"net/http"

	"github.com/pressroom/news-service/internal/domain"
)

// createTopicRequest is the JSON request body for creating a topic.
type createTopicRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

// listTopics handles GET /api/topics.
func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.topicRepo.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	responses := make([]topicResponse, len(topics))
	for i, topic := range topics {
		responses[i] = topicToResponse(topic)
	}

	writeJSON(w, http.StatusOK, topicsEnvelope{Topics: responses})
}

// createTopic handles POST /api/topics.
func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	topic := &domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	}

	created, err := s.topicRepo.Create(r.Context(), topic)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordTopicCreated()
	}
	s.logger.Info().Str("slug", created.Slug).Msg("topic created")

	writeJSON(w, http.StatusCreated, topicEnvelope{Topic: topicToResponse(created)})
}
