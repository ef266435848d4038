package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=posts.go -destination=posts_mock.go -package=handlers

// PostLister lists the posts visible to a user.
type PostLister interface {
	ListPosts(ctx context.Context, requester uuid.UUID, author *uuid.UUID) ([]models.PostDetail, error)
}

// PostCreator creates posts.
type PostCreator interface {
	CreatePost(ctx context.Context, requester uuid.UUID, title, content string, isPrivate bool) (*models.PostDetail, error)
}

// PostGetter reads one post.
type PostGetter interface {
	GetPost(ctx context.Context, requester uuid.UUID, postID int64) (*models.PostDetail, error)
}

// PostUpdater updates posts.
type PostUpdater interface {
	UpdatePost(ctx context.Context, requester uuid.UUID, postID int64, update models.PostUpdate, partial bool) (*models.PostDetail, error)
}

// PostDeleter deletes posts.
type PostDeleter interface {
	DeletePost(ctx context.Context, requester uuid.UUID, postID int64) error
}

// PostRequest represents the JSON body for creating or updating a post
// swagger:model PostRequest
type PostRequest struct {
	// Title, at most 200 characters
	// required: true
	// default: Hello
	Title *string `json:"title"`

	// Body
	// required: true
	// default: First post
	Content *string `json:"content"`

	// Only the author can see a private post
	// default: false
	IsPrivate *bool `json:"is_private"`
}

// NewListPostsHandler returns an HTTP handler listing public posts and the caller's own.
// @Summary List posts
// @Description Public posts plus the caller's private ones, newest first.
// @Tags posts
// @Produce json
// @Param author query string false "Only posts by this user id"
// @Success 200 {array} handlers.PostResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed author"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/posts/ [get]
// @Security BearerAuth
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var author *uuid.UUID
		if raw := r.URL.Query().Get("author"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, r, models.NewFieldError("author", "Enter a valid UUID."))
				return
			}
			author = &id
		}

		posts, err := svc.ListPosts(r.Context(), userID, author)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := make([]PostResponse, 0, len(posts))
		for i := range posts {
			resp = append(resp, newPostResponse(&posts[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreatePostHandler returns an HTTP handler creating a post owned by the caller.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body handlers.PostRequest true "Post"
// @Success 201 {object} handlers.PostResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/posts/ [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req PostRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		post, err := svc.CreatePost(r.Context(), userID, deref(req.Title), deref(req.Content), req.IsPrivate != nil && *req.IsPrivate)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, newPostResponse(post))
	}
}

// NewGetPostHandler returns an HTTP handler reading one post.
// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} handlers.PostResponse
// @Failure 403 {object} handlers.ErrorResponse "Private post of another user"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/posts/{id}/ [get]
// @Security BearerAuth
func NewGetPostHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		postID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		post, err := svc.GetPost(r.Context(), userID, postID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newPostResponse(post))
	}
}

// NewUpdatePostHandler returns an HTTP handler updating the caller's post.
// With partial set (PATCH) only the supplied fields change; otherwise (PUT) title and content are required.
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param request body handlers.PostRequest true "Post fields"
// @Success 200 {object} handlers.PostResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/posts/{id}/ [put]
// @Router /api/posts/{id}/ [patch]
// @Security BearerAuth
func NewUpdatePostHandler(svc PostUpdater, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		postID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req PostRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		update := models.PostUpdate{Title: req.Title, Content: req.Content, IsPrivate: req.IsPrivate}
		post, err := svc.UpdatePost(r.Context(), userID, postID, update, partial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newPostResponse(post))
	}
}

// NewDeletePostHandler returns an HTTP handler deleting the caller's post and its comments.
// @Summary Delete post
// @Tags posts
// @Param id path int true "Post id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /api/posts/{id}/ [delete]
// @Security BearerAuth
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requester(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		postID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.DeletePost(r.Context(), userID, postID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
