package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
)

var userRowColumns = []string{
	"user_id", "username", "email", "password_hash", "first_name", "last_name", "is_active", "created_at", "updated_at",
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), "alice", "alice@example.com", "hash", "Alice", "", true, now, now))

	user, err := repo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_OldestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`WHERE email = \$1\s+ORDER BY created_at, user_id\s+LIMIT 1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), "a", "a@x.com", "hash", "", "", false, now, now))

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.False(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create(t *testing.T) {
	now := time.Now()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate username",
			execErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			wantErr: models.ErrAlreadyExists,
		},
		{
			name:    "db error",
			execErr: errors.New("db down"),
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db, nil)

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(user.UserID, "alice", "alice@example.com", "hash", "", "", false, now, now)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Create(context.Background(), user)
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, models.ErrAlreadyExists):
				assert.ErrorIs(t, err, models.ErrAlreadyExists)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_Activate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = TRUE")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Activate(context.Background(), userID))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = TRUE")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Activate(context.Background(), userID), models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
