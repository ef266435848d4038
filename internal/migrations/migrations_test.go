package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
)

func TestMigrations_Embedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	assert.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_posts_comments.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(Migrations, name)
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestUp_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	assert.NoError(t, Up(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestUp_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	assert.EqualError(t, Up(context.Background(), nil), "boom")
}
