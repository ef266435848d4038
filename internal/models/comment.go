package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment row in the database
type CommentDB struct {
	CommentID   int64     `db:"comment_id"`   // Primary key
	PostID      int64     `db:"post_id"`      // Parent post, fixed at creation
	CommenterID uuid.UUID `db:"commenter_id"` // Author, fixed at creation
	Text        string    `db:"comment_text"` // Comment body
	CreatedAt   time.Time `db:"created_at"`   // Creation timestamp
}

// CommentDetail is a comment joined with its commenter, its post and the post's author.
type CommentDetail struct {
	CommentDB
	Commenter     UserDB `db:"commenter"`
	PostTitle     string `db:"post_title"`
	PostIsPrivate bool   `db:"post_is_private"`
	PostAuthor    UserDB `db:"post_author"`
}
