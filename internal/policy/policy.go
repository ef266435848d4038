// Package policy holds the authorization rules for posts and comments.
//
// Every read and mutation in the service layer asks CanAccess instead of comparing owners inline.
package policy

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// Action is an operation a subject attempts on a resource.
type Action string

const (
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionComment Action = "comment"
)

// Kind identifies the type of a resource.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Resource is the part of a post or comment the rules look at.
// For comments Private reports whether the parent post is private.
type Resource struct {
	Kind    Kind
	OwnerID uuid.UUID
	Private bool
}

// Post describes a post for CanAccess.
func Post(p *models.PostDB) Resource {
	return Resource{Kind: KindPost, OwnerID: p.AuthorID, Private: p.IsPrivate}
}

// Comment describes a comment for CanAccess.
func Comment(c *models.CommentDetail) Resource {
	return Resource{Kind: KindComment, OwnerID: c.CommenterID, Private: c.PostIsPrivate}
}

// CanAccess reports whether subject may perform action on res.
// An anonymous (zero) subject is never allowed anything.
func CanAccess(subject uuid.UUID, action Action, res Resource) bool {
	if subject == uuid.Nil {
		return false
	}
	owner := subject == res.OwnerID

	switch res.Kind {
	case KindPost:
		switch action {
		case ActionRead:
			return !res.Private || owner
		case ActionUpdate, ActionDelete:
			return owner
		case ActionComment:
			// Private posts take no comments, not even from their owner.
			return !res.Private
		}
	case KindComment:
		switch action {
		case ActionRead:
			// Comment visibility ignores ownership: only comments on public posts are visible.
			return !res.Private
		case ActionUpdate, ActionDelete:
			return owner
		}
	}
	return false
}
