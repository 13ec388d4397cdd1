package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps the domain error taxonomy onto status codes. Validation
// problems carry the offending field back for inline display; store and
// invariant failures stay generic for the client and loud in the log.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"field": validationErr.Field,
			"error": validationErr.Message,
		})
		return
	}

	var invariantErr *domain.InvariantViolation
	if errors.As(err, &invariantErr) {
		log.Error().Err(err).Msg("invariant violation")
		http.Error(w, "couldn't complete this action", http.StatusInternalServerError)
		return
	}

	log.Error().Err(err).Msg("request failed")
	http.Error(w, "couldn't complete this action", http.StatusInternalServerError)
}
