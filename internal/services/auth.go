package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Activate(ctx context.Context, userID uuid.UUID) error
}

// SessionTokenStore keeps one session token per user.
type SessionTokenStore interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, key string) (string, error)
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}

// VerificationTokener issues and checks email verification tokens.
type VerificationTokener interface {
	Generate(ctx context.Context, user *models.UserDB) (string, error)
	Check(ctx context.Context, user *models.UserDB, token string) error
}

// Mailer sends an email.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// AuthService handles signup, email verification, login and session tokens.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	sessions  SessionTokenStore
	tokener   VerificationTokener
	mailer    Mailer
	publicURL string
	now       func() time.Time
	newKey    func() (string, error)
}

// NewAuthService creates a new AuthService instance.
// publicURL is the externally reachable base URL used in verification links.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	sessions SessionTokenStore,
	tokener VerificationTokener,
	mailer Mailer,
	publicURL string,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		sessions:  sessions,
		tokener:   tokener,
		mailer:    mailer,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
		newKey:    generateSessionKey,
	}
}

// generateSessionKey returns 40 random hex characters.
func generateSessionKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// EncodeUID encodes a user id for use in a verification link.
func EncodeUID(userID uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID.String()))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(uid string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(string(raw))
}

// Signup creates an inactive account and mails it a verification link.
func (svc *AuthService) Signup(ctx context.Context, input models.SignupInput) (*models.UserDB, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Password != input.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	existing, err := svc.reader.GetByUsername(ctx, input.Username)
	switch {
	case err == nil && existing != nil:
		logger.Log.Infow("username already taken", "username", input.Username)
		return nil, ErrUsernameTaken
	case err != nil && !errors.Is(err, models.ErrNotFound):
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := svc.now().UTC()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	if err := svc.sendVerification(ctx, user); err != nil {
		logger.Log.Errorw("failed to send verification email", "user_id", user.UserID, "err", err)
		return nil, err
	}

	return user, nil
}

func (svc *AuthService) sendVerification(ctx context.Context, user *models.UserDB) error {
	token, err := svc.tokener.Generate(ctx, user)
	if err != nil {
		return fmt.Errorf("generate verification token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/verify-email/%s/%s/", svc.publicURL, EncodeUID(user.UserID), token)
	body := fmt.Sprintf("Hi %s,\n\n"+
		"Thanks for signing up. Please confirm your email address by opening the link below:\n\n"+
		"%s\n\n"+
		"If you did not create an account, you can ignore this message.\n",
		user.DisplayName(), link)

	return svc.mailer.Send(ctx, models.Email{
		To:      []string{user.Email},
		Subject: "Verify your email address",
		Body:    body,
	})
}

// VerifyEmail activates the account identified by uid when token is valid for it.
func (svc *AuthService) VerifyEmail(ctx context.Context, uid, token string) error {
	userID, err := DecodeUID(uid)
	if err != nil {
		logger.Log.Infow("malformed verification uid", "uid", uid)
		return ErrInvalidVerificationLink
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrInvalidVerificationLink
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}

	if err := svc.tokener.Check(ctx, user, token); err != nil {
		logger.Log.Infow("verification token rejected", "user_id", userID, "err", err)
		return ErrInvalidVerificationLink
	}

	if err := svc.writer.Activate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to activate user", "err", err)
		return err
	}
	return nil
}

// Login checks credentials and returns the user's session token.
func (svc *AuthService) Login(ctx context.Context, input models.LoginInput) (string, *models.UserDB, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return "", nil, ErrMissingCredentials
	}
	if err := validation.Struct(input); err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, input.Email)
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Infow("login for unknown email", "email", input.Email)
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, ErrInactiveAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", input.Email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.issueToken(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to issue session token", "err", err)
		return "", nil, err
	}
	return token, user, nil
}

// issueToken returns the user's existing token or stores a new one.
// A concurrent login for the same user can win the insert; the retry then reads its token.
func (svc *AuthService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		key, err := svc.newKey()
		if err != nil {
			return "", err
		}
		token, err := svc.sessions.GetOrCreate(ctx, userID, key)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// Logout revokes the user's session token.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := svc.sessions.Revoke(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.Log.Errorw("failed to revoke session token", "user_id", userID, "err", err)
	}
	return err
}

// Authenticate resolves a session token to the id of an active user.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, models.NewUnauthorizedError("Authentication credentials were not provided.")
	}

	userID, err := svc.sessions.GetUserID(ctx, token)
	if errors.Is(err, models.ErrNotFound) {
		return uuid.Nil, models.NewUnauthorizedError("Invalid token.")
	}
	if err != nil {
		logger.Log.Errorw("failed to resolve session token", "err", err)
		return uuid.Nil, err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return uuid.Nil, models.NewUnauthorizedError("Invalid token.")
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, err
	}
	if !user.IsActive {
		return uuid.Nil, models.NewUnauthorizedError("User inactive or deleted.")
	}
	return userID, nil
}
