// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/middleware"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleError maps a domain error to its status code. Anything outside
// the taxonomy is logged server-side and surfaced as a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOrganisationExists):
		respondWithError(w, http.StatusBadRequest, "Organisation name already taken")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrAlreadyAssigned):
		respondWithError(w, http.StatusBadRequest, "Employee already assigned to this team")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondWithError(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, domain.ErrTeamNotFound):
		respondWithError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, domain.ErrAssignmentNotFound):
		respondWithError(w, http.StatusNotFound, "Assignment not found")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// identity pulls the authenticated identity out of the request context.
// Only called from handlers mounted behind the auth middleware.
func identity(r *http.Request) middleware.Identity {
	id, _ := middleware.IdentityFrom(r.Context())
	return id
}
