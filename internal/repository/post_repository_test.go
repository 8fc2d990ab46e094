package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialflow/internal/models"
)

const postColumns = "id, title, content, platforms, status, created_at, published_at, scheduled_for"

func TestPostRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(sqlmock.AnyArg(), "Launch", "body", pq.Array([]string{"twitter"}),
			models.PostStatusDraft, sqlmock.AnyArg(), nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post := &models.Post{Title: "Launch", Content: "body", Platforms: []string{"twitter"}}
	require.NoError(t, repo.Create(context.Background(), post))
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)
	ctx := context.Background()
	created := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "content", "platforms", "status", "created_at", "published_at", "scheduled_for"}).
			AddRow("p1", "Launch", "body", "{twitter,facebook}", models.PostStatusDraft, created, nil, nil)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT "+postColumns+" FROM posts WHERE id = $1")).
			WithArgs("p1").
			WillReturnRows(rows)

		got, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Launch", got.Title)
		assert.Equal(t, []string{"twitter", "facebook"}, got.Platforms)
	})

	t.Run("missing maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT "+postColumns+" FROM posts WHERE id = $1")).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryUpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &models.Post{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryRemoveMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Remove(context.Background(), "nope"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
