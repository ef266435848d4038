package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
	"github.com/sbilibin2017/gw-blog/internal/validation"
)

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=services

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	ListOnPublicPosts(ctx context.Context) ([]models.CommentDetail, error)
	GetByID(ctx context.Context, commentID int64) (*models.CommentDetail, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Create(ctx context.Context, comment *models.CommentDB) error
	UpdateText(ctx context.Context, commentID int64, text string) error
	Delete(ctx context.Context, commentID int64) error
}

// CommentEventPublisher hands comment events to the notification pipeline.
type CommentEventPublisher interface {
	PublishCommentCreated(ctx context.Context, event models.CommentCreatedEvent) error
}

// CommentService applies ownership and visibility rules to comment operations.
type CommentService struct {
	reader    CommentReader
	writer    CommentWriter
	posts     PostReader
	publisher CommentEventPublisher
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(reader CommentReader, writer CommentWriter, posts PostReader, publisher CommentEventPublisher) *CommentService {
	return &CommentService{
		reader:    reader,
		writer:    writer,
		posts:     posts,
		publisher: publisher,
	}
}

// ListComments returns the comments on public posts.
func (svc *CommentService) ListComments(ctx context.Context, requester uuid.UUID) ([]models.CommentDetail, error) {
	comments, err := svc.reader.ListOnPublicPosts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "err", err)
		return nil, err
	}
	return comments, nil
}

// CreateComment stores a comment by requester on a public post and announces it.
func (svc *CommentService) CreateComment(ctx context.Context, requester uuid.UUID, input models.CommentInput) (*models.CommentDetail, error) {
	input.Text = strings.TrimSpace(input.Text)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	post, err := svc.posts.GetByID(ctx, input.PostID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFoundError("Post not found.")
	}
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", input.PostID, "err", err)
		return nil, err
	}
	if !policy.CanAccess(requester, policy.ActionComment, policy.Post(&post.PostDB)) {
		return nil, models.NewForbiddenError("Cannot comment on private posts.")
	}

	comment := &models.CommentDB{
		PostID:      input.PostID,
		CommenterID: requester,
		Text:        input.Text,
	}
	if err := svc.writer.Create(ctx, comment); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Post deleted between the check and the insert.
			return nil, models.NewNotFoundError("Post not found.")
		}
		logger.Log.Errorw("failed to create comment", "err", err)
		return nil, err
	}

	event := models.CommentCreatedEvent{
		EventID:     uuid.NewString(),
		CommentID:   comment.CommentID,
		PostID:      comment.PostID,
		CommenterID: requester.String(),
		Timestamp:   comment.CreatedAt.Unix(),
	}
	if err := svc.publisher.PublishCommentCreated(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish comment event", "comment_id", comment.CommentID, "err", err)
	}

	return svc.reader.GetByID(ctx, comment.CommentID)
}

// GetComment returns a visible comment.
func (svc *CommentService) GetComment(ctx context.Context, requester uuid.UUID, commentID int64) (*models.CommentDetail, error) {
	return svc.loadVisible(ctx, requester, commentID)
}

// UpdateComment changes the text of the requester's own comment. The post it belongs to never changes.
// A full update (partial == false) requires text.
func (svc *CommentService) UpdateComment(ctx context.Context, requester uuid.UUID, commentID int64, text *string, partial bool) (*models.CommentDetail, error) {
	comment, err := svc.loadVisible(ctx, requester, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(requester, policy.ActionUpdate, policy.Comment(comment)) {
		return nil, models.NewForbiddenError("You can only update your own comments.")
	}

	if text == nil {
		if partial {
			return comment, nil
		}
		return nil, models.NewFieldError("comment_text", "This field is required.")
	}

	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil, models.NewFieldError("comment_text", "This field may not be blank.")
	}

	if err := svc.writer.UpdateText(ctx, commentID, trimmed); err != nil {
		logger.Log.Errorw("failed to update comment", "comment_id", commentID, "err", err)
		return nil, err
	}
	comment.Text = trimmed
	return comment, nil
}

// DeleteComment removes the requester's own comment.
func (svc *CommentService) DeleteComment(ctx context.Context, requester uuid.UUID, commentID int64) error {
	comment, err := svc.loadVisible(ctx, requester, commentID)
	if err != nil {
		return err
	}
	if !policy.CanAccess(requester, policy.ActionDelete, policy.Comment(comment)) {
		return models.NewForbiddenError("You can only delete your own comments.")
	}

	if err := svc.writer.Delete(ctx, commentID); err != nil {
		logger.Log.Errorw("failed to delete comment", "comment_id", commentID, "err", err)
		return err
	}
	return nil
}

// loadVisible returns the comment if it is in the visible set, NotFound otherwise.
func (svc *CommentService) loadVisible(ctx context.Context, requester uuid.UUID, commentID int64) (*models.CommentDetail, error) {
	comment, err := svc.reader.GetByID(ctx, commentID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFoundError("Comment not found.")
	}
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", commentID, "err", err)
		return nil, err
	}
	if !policy.CanAccess(requester, policy.ActionRead, policy.Comment(comment)) {
		return nil, models.NewNotFoundError("Comment not found.")
	}
	return comment, nil
}
