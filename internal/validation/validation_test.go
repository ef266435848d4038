package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
)

func validSignup() models.SignupInput {
	return models.SignupInput{
		Username:        "newuser",
		Email:           "newuser@example.com",
		Password:        "newpass123",
		PasswordConfirm: "newpass123",
	}
}

func TestStruct_Signup(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(in *models.SignupInput)
		wantFields map[string]string
	}{
		{
			name:   "valid",
			mutate: func(in *models.SignupInput) {},
		},
		{
			name:       "missing username",
			mutate:     func(in *models.SignupInput) { in.Username = "" },
			wantFields: map[string]string{"username": "This field is required."},
		},
		{
			name:       "bad username characters",
			mutate:     func(in *models.SignupInput) { in.Username = "bad name!" },
			wantFields: map[string]string{"username": "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."},
		},
		{
			name:       "invalid email",
			mutate:     func(in *models.SignupInput) { in.Email = "not-an-email" },
			wantFields: map[string]string{"email": "Enter a valid email address."},
		},
		{
			name: "short passwords",
			mutate: func(in *models.SignupInput) {
				in.Password = "short"
				in.PasswordConfirm = "short"
			},
			wantFields: map[string]string{
				"password":         "Ensure this field has at least 8 characters.",
				"password_confirm": "Ensure this field has at least 8 characters.",
			},
		},
		{
			name:       "long first name",
			mutate:     func(in *models.SignupInput) { in.FirstName = strings.Repeat("a", 151) },
			wantFields: map[string]string{"first_name": "Ensure this field has no more than 150 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignup()
			tt.mutate(&in)

			err := Struct(in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var ve *models.ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantFields, ve.Fields)
		})
	}
}

func TestStruct_Comment(t *testing.T) {
	err := Struct(models.CommentInput{})

	var ve *models.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "This field is required.", ve.Fields["post"])
	assert.Equal(t, "This field is required.", ve.Fields["comment_text"])

	err = Struct(models.CommentInput{PostID: -4, Text: "hi"})
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{"post": "Enter a valid identifier."}, ve.Fields)
}

func TestStruct_LoginEmailOptional(t *testing.T) {
	assert.NoError(t, Struct(models.LoginInput{}))
	assert.Error(t, Struct(models.LoginInput{Email: "nope", Password: "x"}))
}
