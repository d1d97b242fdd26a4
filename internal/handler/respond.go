package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/service"
)

// badInput marks an error as a 400 for writeError.
type badInput string

func (b badInput) Error() string { return string(b) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	message(w, http.StatusBadRequest, msg)
}

// writeError funnels every handler error through one formatter: the
// response body is always {"message": ...}.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var bi badInput
	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateReview),
		errors.As(err, &bi):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrMovieNotFound):
		status = http.StatusNotFound
	}

	message(w, status, err.Error())
}
