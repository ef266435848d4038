package services

import "github.com/sbilibin2017/gw-blog/internal/models"

// Client-facing validation failures of the identity flows.
var (
	ErrPasswordMismatch        = models.NewFieldError("password", "Passwords do not match.")
	ErrUsernameTaken           = models.NewFieldError("username", "A user with that username already exists.")
	ErrMissingCredentials      = models.NewValidationError("Must include 'email' and 'password'.")
	ErrInvalidCredentials      = models.NewValidationError("Invalid email or password.")
	ErrInactiveAccount         = models.NewValidationError("Please verify your email address before logging in.")
	ErrInvalidVerificationLink = models.NewValidationError("Invalid verification link.")
)
