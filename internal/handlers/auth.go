package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, input models.SignupInput) (*models.UserDB, error)
}

// EmailVerifier activates accounts from verification links.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, uid, token string) error
}

// Loginer checks credentials and issues session tokens.
type Loginer interface {
	Login(ctx context.Context, input models.LoginInput) (string, *models.UserDB, error)
}

// Logouter revokes session tokens.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password repeated
	// required: true
	// default: secret123
	PasswordConfirm string `json:"password_confirm"`

	// Given name
	FirstName string `json:"first_name"`

	// Family name
	LastName string `json:"last_name"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User created successfully. Please check your email to verify your account.
	Message string `json:"message"`

	// Created user
	User UserResponse `json:"user"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Session token
	// default: 9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b
	Token string `json:"token"`

	// Logged in user
	User UserResponse `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up
// @Description Creates an inactive account and emails a verification link. Usernames are unique, emails are not.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or username taken"
// @Router /api/auth/signup/ [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Signup(r.Context(), models.SignupInput{
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			PasswordConfirm: req.PasswordConfirm,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User created successfully. Please check your email to verify your account.",
			User:    newUserResponse(user),
		})
	}
}

// NewVerifyEmailHandler returns an HTTP handler for email verification links.
// @Summary Verify email
// @Description Activates the account the link was issued for. Links are single-use and expire.
// @Tags auth
// @Produce json
// @Param uid path string true "Encoded user id"
// @Param token path string true "Verification token"
// @Success 200 {object} handlers.MessageResponse "Email verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid verification link."
// @Router /api/auth/verify-email/{uid}/{token}/ [get]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.VerifyEmail(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "token")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Email verified successfully. You can now log in."})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Checks email and password of an active account and returns its session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or password."
// @Router /api/auth/login/ [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		token, user, err := svc.Login(r.Context(), models.LoginInput{Email: req.Email, Password: req.Password})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: newUserResponse(user)})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's session token.
// @Summary Log out
// @Description Revokes the session token. The next login issues a new one.
// @Tags auth
// @Success 204 "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/auth/logout/ [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
