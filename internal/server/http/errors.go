package httpserver

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pressroom/news-service/internal/domain"
)

// writeDomainError maps domain and raw store errors to the HTTP error
// taxonomy and writes the response. Handlers never inspect failure internals;
// this is the single translation point. Message text is stable and
// kind-specific so clients can branch on it, and internal detail never
// reaches the wire.
func writeDomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		writeError(w, http.StatusNotFound, nfErr.Message())
		return
	}

	var existsErr *domain.AlreadyExistsError
	if errors.As(err, &existsErr) {
		writeError(w, http.StatusConflict, existsErr.Message())
		return
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Bad request")
		return
	}

	// Raw driver failures with recognized classes normalize to a 400:
	// 22P02 is an invalid text representation for an expected type,
	// 23502 a not-null violation.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "23502":
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}
	}

	writeError(w, http.StatusInternalServerError, "Internal server error")
}
