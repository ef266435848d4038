package models

// CommentCreatedEvent is published after a comment is stored.
// Consumers only get identifiers and reload state from the database.
type CommentCreatedEvent struct {
	EventID     string `json:"event_id"`     // Unique identifier of the event
	CommentID   int64  `json:"comment_id"`   // Stored comment
	PostID      int64  `json:"post_id"`      // Parent post of the comment
	CommenterID string `json:"commenter_id"` // User who wrote the comment
	Timestamp   int64  `json:"timestamp"`    // Unix seconds when the comment was created
}
