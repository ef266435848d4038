package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

// CommentLister lists visible comments.
type CommentLister interface {
	ListComments(ctx context.Context, requester uuid.UUID) ([]models.CommentDetail, error)
}

// CommentCreator creates comments.
type CommentCreator interface {
	CreateComment(ctx context.Context, requester uuid.UUID, input models.CommentInput) (*models.CommentDetail, error)
}

// CommentGetter reads one comment.
type CommentGetter interface {
	GetComment(ctx context.Context, requester uuid.UUID, commentID int64) (*models.CommentDetail, error)
}

// CommentUpdater updates comment text.
type CommentUpdater interface {
	UpdateComment(ctx context.Context, requester uuid.UUID, commentID int64, text *string, partial bool) (*models.CommentDetail, error)
}

// CommentDeleter deletes comments.
type CommentDeleter interface {
	DeleteComment(ctx context.Context, requester uuid.UUID, commentID int64) error
}

// CommentRequest represents the JSON body for creating a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Post id
	// required: true
	// default: 1
	Post int64 `json:"post"`

	// Comment text
	// required: true
	// default: Nice post!
	CommentText string `json:"comment_text"`
}

// CommentUpdateRequest represents the JSON body for updating a comment.
// The post of a comment cannot be changed.
// swagger:model CommentUpdateRequest
type CommentUpdateRequest struct {
	// Comment text
	// default: Edited
	CommentText *string `json:"comment_text"`
}

// NewListCommentsHandler returns an HTTP handler listing comments on public posts.
// @Summary List comments
// @Description Comments on public posts, newest first.
// @Tags comments
// @Produce json
// @Success 200 {array} handlers.CommentResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/comments/ [get]
// @Security BearerAuth
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		comments, err := svc.ListComments(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := make([]CommentResponse, 0, len(comments))
		for i := range comments {
			resp = append(resp, newCommentResponse(&comments[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateCommentHandler returns an HTTP handler commenting on a public post.
// @Summary Create comment
// @Description The post author is notified by email.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body handlers.CommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Cannot comment on private posts."
// @Failure 404 {object} handlers.ErrorResponse "Post not found."
// @Router /api/comments/ [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req CommentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		comment, err := svc.CreateComment(r.Context(), userID, models.CommentInput{PostID: req.Post, Text: req.CommentText})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, newCommentResponse(comment))
	}
}

// NewGetCommentHandler returns an HTTP handler reading one comment.
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment id"
// @Success 200 {object} handlers.CommentResponse
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/comments/{id}/ [get]
// @Security BearerAuth
func NewGetCommentHandler(svc CommentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		commentID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		comment, err := svc.GetComment(r.Context(), userID, commentID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newCommentResponse(comment))
	}
}

// NewUpdateCommentHandler returns an HTTP handler updating the text of the caller's comment.
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param request body handlers.CommentUpdateRequest true "Comment text"
// @Success 200 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/comments/{id}/ [put]
// @Router /api/comments/{id}/ [patch]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentUpdater, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		commentID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req CommentUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		comment, err := svc.UpdateComment(r.Context(), userID, commentID, req.CommentText, partial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newCommentResponse(comment))
	}
}

// NewDeleteCommentHandler returns an HTTP handler deleting the caller's comment.
// @Summary Delete comment
// @Tags comments
// @Param id path int true "Comment id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/comments/{id}/ [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		commentID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.DeleteComment(r.Context(), userID, commentID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
