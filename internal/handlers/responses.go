package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	// User id
	ID uuid.UUID `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Email address
	// default: alice@example.com
	Email string `json:"email"`

	// Given name
	FirstName string `json:"first_name"`

	// Family name
	LastName string `json:"last_name"`
}

// PostResponse represents a post
// swagger:model PostResponse
type PostResponse struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Author        UserResponse `json:"author"`
	IsPrivate     bool         `json:"is_private"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	CommentsCount int          `json:"comments_count"`
}

// CommentResponse represents a comment
// swagger:model CommentResponse
type CommentResponse struct {
	ID          int64        `json:"id"`
	Post        int64        `json:"post"`
	CommentText string       `json:"comment_text"`
	Commenter   UserResponse `json:"commenter"`
	CreatedAt   time.Time    `json:"created_at"`
	PostTitle   string       `json:"post_title"`
}

func newUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func newPostResponse(p *models.PostDetail) PostResponse {
	return PostResponse{
		ID:            p.PostID,
		Title:         p.Title,
		Content:       p.Content,
		Author:        newUserResponse(&p.Author),
		IsPrivate:     p.IsPrivate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CommentsCount: p.CommentsCount,
	}
}

func newCommentResponse(c *models.CommentDetail) CommentResponse {
	return CommentResponse{
		ID:          c.CommentID,
		Post:        c.PostID,
		CommentText: c.Text,
		Commenter:   newUserResponse(&c.Commenter),
		CreatedAt:   c.CreatedAt,
		PostTitle:   c.PostTitle,
	}
}
