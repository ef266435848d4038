package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionTokenRepository stores one durable session token per user in Postgres.
type SessionTokenRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSessionTokenRepository(db *sqlx.DB, txGetter TxGetter) *SessionTokenRepository {
	return &SessionTokenRepository{db: db, txGetter: txGetter}
}

// GetOrCreate stores key for the user unless the user already has a token,
// and returns whichever token is stored.
func (r *SessionTokenRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO auth_tokens (key, user_id, created_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id) DO NOTHING
			RETURNING key
		)
		SELECT key FROM inserted
		UNION ALL
		SELECT key FROM auth_tokens WHERE user_id = $2
		LIMIT 1
	`

	var stored string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stored, query, key, userID)

	logQuery(query, []any{userID}, stored != "", err)

	if err != nil {
		return "", mapError(err)
	}
	return stored, nil
}

// GetUserID resolves a token to its user or returns models.ErrNotFound.
func (r *SessionTokenRepository) GetUserID(ctx context.Context, key string) (uuid.UUID, error) {
	const query = `SELECT user_id FROM auth_tokens WHERE key = $1`

	var userID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &userID, query, key)

	logQuery(query, []any{"***"}, userID, err)

	if err != nil {
		return uuid.Nil, mapError(err)
	}
	return userID, nil
}

// GetKey returns the user's token or models.ErrNotFound.
func (r *SessionTokenRepository) GetKey(ctx context.Context, userID uuid.UUID) (string, error) {
	const query = `SELECT key FROM auth_tokens WHERE user_id = $1`

	var key string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &key, query, userID)

	logQuery(query, []any{userID}, key != "", err)

	if err != nil {
		return "", mapError(err)
	}
	return key, nil
}

// Delete removes the user's token and returns it, or models.ErrNotFound when there was none.
func (r *SessionTokenRepository) Delete(ctx context.Context, userID uuid.UUID) (string, error) {
	const query = `DELETE FROM auth_tokens WHERE user_id = $1 RETURNING key`

	var key string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &key, query, userID)

	logQuery(query, []any{userID}, key != "", err)

	if err != nil {
		return "", mapError(err)
	}
	return key, nil
}
