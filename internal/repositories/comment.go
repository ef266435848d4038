package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const commentDetailSelect = `
	SELECT c.comment_id, c.post_id, c.commenter_id, c.comment_text, c.created_at,
	       cu.user_id AS "commenter.user_id", cu.username AS "commenter.username", cu.email AS "commenter.email",
	       cu.first_name AS "commenter.first_name", cu.last_name AS "commenter.last_name",
	       p.title AS post_title, p.is_private AS post_is_private,
	       pu.user_id AS "post_author.user_id", pu.username AS "post_author.username", pu.email AS "post_author.email",
	       pu.first_name AS "post_author.first_name", pu.last_name AS "post_author.last_name"
	FROM comments c
	JOIN users cu ON cu.user_id = c.commenter_id
	JOIN posts p ON p.post_id = c.post_id
	JOIN users pu ON pu.user_id = p.author_id
`

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentReadRepository(db *sqlx.DB, txGetter TxGetter) *CommentReadRepository {
	return &CommentReadRepository{db: db, txGetter: txGetter}
}

// ListOnPublicPosts returns every comment whose post is not private, newest first.
func (r *CommentReadRepository) ListOnPublicPosts(ctx context.Context) ([]models.CommentDetail, error) {
	query := commentDetailSelect + `
		WHERE p.is_private = FALSE
		ORDER BY c.created_at DESC, c.comment_id DESC
	`

	comments := []models.CommentDetail{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query)

	logQuery(query, nil, len(comments), err)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID returns a comment with its post and users, or models.ErrNotFound.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID int64) (*models.CommentDetail, error) {
	query := commentDetailSelect + `WHERE c.comment_id = $1`

	var comment models.CommentDetail
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &comment, query, commentID)

	logQuery(query, []any{commentID}, comment.CommentID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &comment, nil
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter TxGetter) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts comment and fills in its id and creation time.
func (r *CommentWriteRepository) Create(ctx context.Context, comment *models.CommentDB) error {
	const query = `
		INSERT INTO comments (post_id, commenter_id, comment_text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING comment_id, created_at
	`
	args := []any{comment.PostID, comment.CommenterID, comment.Text}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&comment.CommentID, &comment.CreatedAt)

	logQuery(query, args, comment.CommentID, err)

	return mapError(err)
}

// UpdateText replaces the text of a comment. Post and commenter never change.
func (r *CommentWriteRepository) UpdateText(ctx context.Context, commentID int64, text string) error {
	const query = `UPDATE comments SET comment_text = $1 WHERE comment_id = $2`
	args := []any{text, commentID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	if err != nil {
		return err
	}

	_, err = checkAffected(res)
	return err
}

// Delete removes a comment.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID int64) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, commentID)
	logQuery(query, []any{commentID}, nil, err)
	if err != nil {
		return err
	}

	_, err = checkAffected(res)
	return err
}
