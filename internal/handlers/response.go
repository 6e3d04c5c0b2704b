package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sbilibin2017/gw-book-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/services"
	"github.com/sbilibin2017/gw-book-tracker/internal/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validation.New()

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Failed fields of the request, by JSON name
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps service and validation errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Fields: vErr.Fields})
	case errors.Is(err, services.ErrNoChanges):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrUserBookNotFound),
		errors.Is(err, services.ErrBookshelfNotFound),
		errors.Is(err, services.ErrReadingNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrChangeRequestNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrChangeRequestNotPending):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// decodeBody decodes and validates a JSON request body.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &validation.Error{Fields: map[string]string{"body": "must be valid JSON"}}
	}
	return validate.Validate(dst)
}

// userID returns the caller set by the auth middleware.
func userID(r *http.Request) (string, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}

// pathID reads a route parameter that must be a UUID.
func pathID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := validate.Var(id, "required,uuid"); err != nil {
		return "", &validation.Error{Fields: map[string]string{name: "must be a valid UUID"}}
	}
	return id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &validation.Error{Fields: map[string]string{name: "must be a non-negative number"}}
	}
	return n, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
