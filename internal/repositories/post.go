package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const postDetailSelect = `
	SELECT p.post_id, p.title, p.content, p.author_id, p.is_private, p.created_at, p.updated_at,
	       u.user_id AS "author.user_id", u.username AS "author.username", u.email AS "author.email",
	       u.first_name AS "author.first_name", u.last_name AS "author.last_name",
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id) AS comments_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostReadRepository(db *sqlx.DB, txGetter TxGetter) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

// List returns the posts visible to viewer (public ones and the viewer's own),
// newest first, optionally restricted to one author.
func (r *PostReadRepository) List(ctx context.Context, viewer uuid.UUID, author *uuid.UUID) ([]models.PostDetail, error) {
	query := postDetailSelect + `
		WHERE (p.is_private = FALSE OR p.author_id = $1)
		  AND ($2::UUID IS NULL OR p.author_id = $2)
		ORDER BY p.created_at DESC, p.post_id DESC
	`
	authorArg := uuid.NullUUID{}
	if author != nil {
		authorArg = uuid.NullUUID{UUID: *author, Valid: true}
	}
	args := []any{viewer, authorArg}

	posts := []models.PostDetail{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &posts, query, args...)

	logQuery(query, args, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns a post regardless of its privacy, or models.ErrNotFound.
func (r *PostReadRepository) GetByID(ctx context.Context, postID int64) (*models.PostDetail, error) {
	query := postDetailSelect + `WHERE p.post_id = $1`

	var post models.PostDetail
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, postID)

	logQuery(query, []any{postID}, post.PostID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts post and fills in its id and timestamps.
func (r *PostWriteRepository) Create(ctx context.Context, post *models.PostDB) error {
	const query = `
		INSERT INTO posts (title, content, author_id, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING post_id, created_at, updated_at
	`
	args := []any{post.Title, post.Content, post.AuthorID, post.IsPrivate}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt)

	logQuery(query, args, post.PostID, err)

	return mapError(err)
}

// Update writes title, content and privacy of post. The author is never changed.
func (r *PostWriteRepository) Update(ctx context.Context, post *models.PostDB) error {
	const query = `
		UPDATE posts
		SET title = $1, content = $2, is_private = $3, updated_at = NOW()
		WHERE post_id = $4
		RETURNING updated_at
	`
	args := []any{post.Title, post.Content, post.IsPrivate, post.PostID}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&post.UpdatedAt)

	logQuery(query, args, post.UpdatedAt, err)

	return mapError(err)
}

// Delete removes a post and, by cascade, its comments.
func (r *PostWriteRepository) Delete(ctx context.Context, postID int64) error {
	const query = `DELETE FROM posts WHERE post_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, postID)
	logQuery(query, []any{postID}, nil, err)
	if err != nil {
		return err
	}

	_, err = checkAffected(res)
	return err
}
