package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

const userColumns = `user_id, username, email, password_hash, first_name, last_name, is_active, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id or models.ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

// GetByUsername returns the user with the given username or models.ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.get(ctx, query, username)
}

// GetByEmail returns the earliest created user with the given email or models.ErrNotFound.
// Emails are not unique, so the oldest account wins.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		ORDER BY created_at, user_id
		LIMIT 1
	`
	return r.get(ctx, query, email)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user. A taken username yields models.ErrAlreadyExists.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, first_name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		user.UserID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.IsActive, user.CreatedAt, user.UpdatedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// password hash stays out of the log
	logQuery(query, []any{user.UserID, user.Username, user.Email}, rowsAffected, err)

	return mapError(err)
}

// Activate marks the user as verified.
func (r *UserWriteRepository) Activate(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET is_active = TRUE, updated_at = NOW() WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	logQuery(query, []any{userID}, nil, err)
	if err != nil {
		return err
	}

	_, err = checkAffected(res)
	return err
}
