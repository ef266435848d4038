package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"Token abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, TokenFromRequest(r), tt.header)
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		header           string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectedError    string
		expectNextCalled bool
	}{
		{
			name:           "NoToken",
			mockSetup:      func(m *MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authentication credentials were not provided.",
		},
		{
			name:   "InvalidToken",
			header: "Bearer sometoken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(uuid.Nil, models.NewUnauthorizedError("Invalid token."))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token.",
		},
		{
			name:   "StoreError",
			header: "Token sometoken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(uuid.Nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
		{
			name:   "ValidToken",
			header: "Bearer validtoken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(userID, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				id, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, id)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(mockAuth)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedError != "" {
				var body map[string]string
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(r.Context())
	assert.False(t, ok)
}
