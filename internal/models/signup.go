package models

// SignupInput carries the fields accepted by account signup.
type SignupInput struct {
	Username        string `json:"username" validate:"required,max=150,username"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,min=8"`
	FirstName       string `json:"first_name" validate:"max=150"`
	LastName        string `json:"last_name" validate:"max=150"`
}

// LoginInput carries the credentials accepted by login.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// PostInput carries a post title and body for creation and full updates.
type PostInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// CommentInput carries the fields accepted by comment creation.
type CommentInput struct {
	PostID int64  `json:"post" validate:"required,gt=0"`
	Text   string `json:"comment_text" validate:"required"`
}
