package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Authenticator resolves a session token to a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// TokenFromRequest extracts the token of an "Authorization: Bearer <token>" or "Token <token>" header.
func TokenFromRequest(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok {
		return ""
	}
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware rejects requests without a valid session token and
// stores the authenticated user id in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := TokenFromRequest(r)
			if token == "" {
				writeUnauthorized(w, "Authentication credentials were not provided.")
				return
			}

			userID, err := auth.Authenticate(ctx, token)
			if err != nil {
				var appErr *models.Error
				switch {
				case errors.As(err, &appErr) && errors.Is(err, models.ErrAuthenticationRequired):
					writeUnauthorized(w, appErr.Message)
				case errors.Is(err, models.ErrAuthenticationRequired):
					writeUnauthorized(w, "Invalid token.")
				default:
					logger.Log.Errorw("authentication failed", "err", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	logger.Log.Infow("authorization failed", "reason", message)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
