package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/internal/transfer"
)

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to draft", func(t *testing.T) {
		svc := NewPostService(repository.NewMemoryPostRepository())
		post, err := svc.CreatePost(ctx, &transfer.PostCreation{
			Title:     "Launch",
			Content:   "body",
			Platforms: []string{"twitter"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusDraft, post.Status)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("publish flag publishes immediately", func(t *testing.T) {
		svc := NewPostService(repository.NewMemoryPostRepository())
		post, err := svc.CreatePost(ctx, &transfer.PostCreation{
			Title:     "Launch",
			Content:   "body",
			Platforms: []string{"twitter"},
			Publish:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPublished, post.Status)
		assert.NotNil(t, post.PublishedAt)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewPostService(repository.NewMemoryPostRepository())
		_, err := svc.CreatePost(ctx, &transfer.PostCreation{Content: "body"})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreatePost(ctx, &transfer.PostCreation{Title: "T"})
		assert.ErrorIs(t, err, ErrValidation)

		// Platforms only matter when publishing right away.
		_, err = svc.CreatePost(ctx, &transfer.PostCreation{Title: "T", Content: "c", Publish: true})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdatePostMergesShallowly(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	svc := NewPostService(pr)

	created, err := svc.CreatePost(ctx, &transfer.PostCreation{
		Title:     "before",
		Content:   "original content",
		Platforms: []string{"twitter"},
	})
	require.NoError(t, err)

	title := "after"
	updated, err := svc.UpdatePost(ctx, created.ID, &transfer.PostUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "original content", updated.Content, "untouched fields keep their values")
	assert.Equal(t, []string{"twitter"}, updated.Platforms)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, "missing", &transfer.PostUpdate{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdatePost(ctx, created.ID, &transfer.PostUpdate{Title: &empty})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
