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

//go:generate mockgen -source=posts.go -destination=posts_mock.go -package=services

// PostReader defines read-only operations for posts.
type PostReader interface {
	List(ctx context.Context, viewer uuid.UUID, author *uuid.UUID) ([]models.PostDetail, error)
	GetByID(ctx context.Context, postID int64) (*models.PostDetail, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Create(ctx context.Context, post *models.PostDB) error
	Update(ctx context.Context, post *models.PostDB) error
	Delete(ctx context.Context, postID int64) error
}

// PostService applies ownership and privacy rules to post operations.
type PostService struct {
	reader PostReader
	writer PostWriter
}

// NewPostService creates a new PostService instance.
func NewPostService(reader PostReader, writer PostWriter) *PostService {
	return &PostService{reader: reader, writer: writer}
}

// ListPosts returns the public posts plus the requester's own, optionally limited to one author.
func (svc *PostService) ListPosts(ctx context.Context, requester uuid.UUID, author *uuid.UUID) ([]models.PostDetail, error) {
	posts, err := svc.reader.List(ctx, requester, author)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}
	return posts, nil
}

// CreatePost stores a post owned by requester.
func (svc *PostService) CreatePost(ctx context.Context, requester uuid.UUID, title, content string, isPrivate bool) (*models.PostDetail, error) {
	input := models.PostInput{Title: strings.TrimSpace(title), Content: strings.TrimSpace(content)}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	post := &models.PostDB{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  requester,
		IsPrivate: isPrivate,
	}
	if err := svc.writer.Create(ctx, post); err != nil {
		logger.Log.Errorw("failed to create post", "err", err)
		return nil, err
	}

	return svc.reader.GetByID(ctx, post.PostID)
}

// GetPost returns a post the requester may read.
func (svc *PostService) GetPost(ctx context.Context, requester uuid.UUID, postID int64) (*models.PostDetail, error) {
	post, err := svc.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(requester, policy.ActionRead, policy.Post(&post.PostDB)) {
		return nil, models.NewForbiddenError("You do not have permission to view this post.")
	}
	return post, nil
}

// UpdatePost changes the requester's own post.
// A full update (partial == false) requires title and content; a partial one applies only supplied fields.
func (svc *PostService) UpdatePost(ctx context.Context, requester uuid.UUID, postID int64, update models.PostUpdate, partial bool) (*models.PostDetail, error) {
	post, err := svc.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(requester, policy.ActionUpdate, policy.Post(&post.PostDB)) {
		return nil, models.NewForbiddenError("You can only update your own posts.")
	}

	if err := applyPostUpdate(&post.PostDB, update, partial); err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, &post.PostDB); err != nil {
		logger.Log.Errorw("failed to update post", "post_id", postID, "err", err)
		return nil, err
	}
	return post, nil
}

func applyPostUpdate(post *models.PostDB, update models.PostUpdate, partial bool) error {
	if !partial {
		missing := &models.ValidationError{Fields: map[string]string{}}
		if update.Title == nil {
			missing.Fields["title"] = "This field is required."
		}
		if update.Content == nil {
			missing.Fields["content"] = "This field is required."
		}
		if len(missing.Fields) > 0 {
			return missing
		}
	}

	input := models.PostInput{Title: post.Title, Content: post.Content}
	if update.Title != nil {
		input.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		input.Content = strings.TrimSpace(*update.Content)
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	post.Title = input.Title
	post.Content = input.Content
	if update.IsPrivate != nil {
		post.IsPrivate = *update.IsPrivate
	}
	return nil
}

// DeletePost removes the requester's own post together with its comments.
func (svc *PostService) DeletePost(ctx context.Context, requester uuid.UUID, postID int64) error {
	post, err := svc.load(ctx, postID)
	if err != nil {
		return err
	}
	if !policy.CanAccess(requester, policy.ActionDelete, policy.Post(&post.PostDB)) {
		return models.NewForbiddenError("You can only delete your own posts.")
	}

	if err := svc.writer.Delete(ctx, postID); err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", postID, "err", err)
		return err
	}
	return nil
}

func (svc *PostService) load(ctx context.Context, postID int64) (*models.PostDetail, error) {
	post, err := svc.reader.GetByID(ctx, postID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFoundError("Post not found.")
	}
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return nil, err
	}
	return post, nil
}
