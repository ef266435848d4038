package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Post not found.
	Error string `json:"error"`

	// Per-field problems, present on validation errors
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse represents a response that only carries a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Email verified successfully. You can now log in.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		msg := verr.Message
		if msg == "" {
			msg = "Invalid input."
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Fields: verr.Fields})
		return
	}

	status, msg := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, models.ErrAuthenticationRequired):
		status, msg = http.StatusUnauthorized, "Authentication credentials were not provided."
	case errors.Is(err, models.ErrForbidden):
		status, msg = http.StatusForbidden, "You do not have permission to perform this action."
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found."
	default:
		logger.Log.Errorw("request failed",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
		)
		writeJSON(w, status, ErrorResponse{Error: msg})
		return
	}

	var appErr *models.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.NewFieldError(typeErr.Field, "Incorrect type.")
	}
	logger.Log.Infow("failed to decode request body", "error", err)
	return models.NewValidationError("Invalid request body.")
}

// requester returns the user id set by the auth middleware.
func requester(r *http.Request) (uuid.UUID, error) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, models.ErrAuthenticationRequired
	}
	return id, nil
}

// pathID parses the {id} route parameter. Anything but a positive integer matches no resource.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.ErrNotFound
	}
	return id, nil
}
