package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a post row in the database
type PostDB struct {
	PostID    int64     `db:"post_id"`    // Primary key
	Title     string    `db:"title"`      // Post title, at most 200 characters
	Content   string    `db:"content"`    // Post body
	AuthorID  uuid.UUID `db:"author_id"`  // Owner, fixed at creation
	IsPrivate bool      `db:"is_private"` // Visible to the owner only when true
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `db:"updated_at"` // Last update timestamp
}

// PostDetail is a post joined with its author and the number of comments on it.
type PostDetail struct {
	PostDB
	Author        UserDB `db:"author"`
	CommentsCount int    `db:"comments_count"`
}

// PostUpdate holds the fields of a post update. Nil fields are left unchanged.
type PostUpdate struct {
	Title     *string
	Content   *string
	IsPrivate *bool
}
