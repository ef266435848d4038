package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantFields map[string]string
	}{
		{"field validation", models.NewFieldError("title", "This field is required."), http.StatusBadRequest, "Invalid input.", map[string]string{"title": "This field is required."}},
		{"message validation", models.NewValidationError("Invalid email or password."), http.StatusBadRequest, "Invalid email or password.", nil},
		{"unauthorized", models.ErrAuthenticationRequired, http.StatusUnauthorized, "Authentication credentials were not provided.", nil},
		{"forbidden with message", models.NewForbiddenError("You can only update your own posts."), http.StatusForbidden, "You can only update your own posts.", nil},
		{"wrapped not found", fmt.Errorf("load: %w", models.ErrNotFound), http.StatusNotFound, "Not found.", nil},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "Internal server error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantFields, resp.Fields)
		})
	}
}

func TestWriteError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = old }()

	handler := middlewares.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.New("boom"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/comments/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/api/comments/", fields["uri"])
	assert.Equal(t, "boom", fields["error"])
}

func TestDecodeJSON(t *testing.T) {
	var req CommentRequest
	assert.NoError(t, decodeJSON(newRequest(t, http.MethodPost, "/", nil, uuid.Nil, nil), &req))

	err := decodeJSON(newRequest(t, http.MethodPost, "/", `{"post":"abc"}`, uuid.Nil, nil), &req)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Incorrect type.", verr.Fields["post"])

	err = decodeJSON(newRequest(t, http.MethodPost, "/", `{not json`, uuid.Nil, nil), &req)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid request body.", verr.Message)
}

func TestPathID(t *testing.T) {
	id, err := pathID(newRequest(t, http.MethodGet, "/", nil, uuid.Nil, map[string]string{"id": "12"}))
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"abc", "0", "-1", ""} {
		_, err := pathID(newRequest(t, http.MethodGet, "/", nil, uuid.Nil, map[string]string{"id": raw}))
		assert.ErrorIs(t, err, models.ErrNotFound, raw)
	}
}
