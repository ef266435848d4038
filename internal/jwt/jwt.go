package jwt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// PurposeEmailVerification is the only purpose tokens are issued for.
const PurposeEmailVerification = "email_verification"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenUserMismatch = errors.New("token issued for another user")
	ErrTokenUsed         = errors.New("token no longer matches user state")
)

// Claims are the claims carried by a verification token.
type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	Purpose     string    `json:"purpose"`
	Fingerprint string    `json:"fp"`
	jwt.RegisteredClaims
}

// JWT issues and checks email verification tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.SecretKey = key
	}
}

// WithExpiration sets how long issued tokens stay valid.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.Exp = exp
	}
}

// New creates a JWT with a 72h lifetime unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{Exp: 72 * time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate issues a verification token bound to the user's current state.
func (j *JWT) Generate(ctx context.Context, user *models.UserDB) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      user.UserID,
		Purpose:     PurposeEmailVerification,
		Fingerprint: fingerprint(user),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies the signature and expiry of tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Purpose != PurposeEmailVerification {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Check verifies that tokenString was issued for user and that the user has not
// changed since. Activating the account changes the fingerprint, so a token passes Check once.
func (j *JWT) Check(ctx context.Context, user *models.UserDB, tokenString string) error {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.UserID != user.UserID {
		return ErrTokenUserMismatch
	}
	if claims.Fingerprint != fingerprint(user) {
		return ErrTokenUsed
	}
	return nil
}

func fingerprint(user *models.UserDB) string {
	h := sha256.New()
	h.Write([]byte(user.UserID.String()))
	h.Write([]byte{0})
	h.Write([]byte(user.PasswordHash))
	h.Write([]byte{0})
	h.Write([]byte(user.Email))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(user.IsActive)))
	return hex.EncodeToString(h.Sum(nil))[:32]
}
