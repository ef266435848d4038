package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NewNotFoundError("Post not found."), ErrNotFound},
		{"forbidden", NewForbiddenError("You can only delete your own posts."), ErrForbidden},
		{"unauthorized", NewUnauthorizedError("Invalid token."), ErrAuthenticationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.kind))

			var appErr *Error
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.err.Error(), appErr.Message)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "Invalid email or password.", NewValidationError("Invalid email or password.").Error())
	assert.Equal(t, "password: Passwords do not match.", NewFieldError("password", "Passwords do not match.").Error())

	ve := &ValidationError{Fields: map[string]string{"title": "required", "content": "required"}}
	assert.Equal(t, "content: required; title: required", ve.Error())

	ve.Message = "Invalid input."
	assert.Equal(t, "Invalid input. (content: required; title: required)", ve.Error())
}

func TestUserDB_DisplayName(t *testing.T) {
	u := &UserDB{Username: "alice"}
	assert.Equal(t, "alice", u.DisplayName())

	u.FirstName = "Alice"
	assert.Equal(t, "Alice", u.DisplayName())

	u.LastName = "Liddell"
	assert.Equal(t, "Alice Liddell", u.DisplayName())
}
