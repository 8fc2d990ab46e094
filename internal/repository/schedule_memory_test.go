package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialflow/internal/models"
)

func addSchedule(t *testing.T, repo ScheduleRepository, postID string, at time.Time) *models.Schedule {
	t.Helper()
	s := &models.Schedule{PostID: postID, ScheduledAt: at}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestMemoryScheduleRepositoryListForDay(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepository()

	day := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	afternoon := addSchedule(t, repo, "p1", day.Add(14*time.Hour))
	morning := addSchedule(t, repo, "p2", day.Add(9*time.Hour+30*time.Minute))
	addSchedule(t, repo, "p3", day.AddDate(0, 0, 1).Add(8*time.Hour))

	got, err := repo.ListForDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, morning.ID, got[0].ID)
	assert.Equal(t, afternoon.ID, got[1].ID)
}

func TestMemoryScheduleRepositoryTieBreak(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepository()

	at := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	first := addSchedule(t, repo, "p1", at)
	second := addSchedule(t, repo, "p2", at)

	// Same instant twice: insertion order decides, on every read.
	for i := 0; i < 3; i++ {
		got, err := repo.ListForDay(ctx, at)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	}
}

func TestMemoryScheduleRepositoryListForRange(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepository()

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 7, 23, 59, 59, 0, time.UTC)

	inside := addSchedule(t, repo, "p1", start.AddDate(0, 0, 3))
	atStart := addSchedule(t, repo, "p2", start)
	addSchedule(t, repo, "p3", end.Add(time.Second))

	got, err := repo.ListForRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, atStart.ID, got[0].ID, "inclusive lower bound, sorted first")
	assert.Equal(t, inside.ID, got[1].ID)
}

func TestMemoryScheduleRepositoryDueBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepository()

	cutoff := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	due := addSchedule(t, repo, "p1", cutoff.Add(-time.Hour))
	atCutoff := addSchedule(t, repo, "p2", cutoff)
	addSchedule(t, repo, "p3", cutoff.Add(time.Minute))

	got, err := repo.ListDueBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, due.ID, got[0].ID)
	assert.Equal(t, atCutoff.ID, got[1].ID)
}

func TestMemoryScheduleRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepository()

	at := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	s := addSchedule(t, repo, "post-1", at)
	assert.NotEmpty(t, s.ID)

	byPost, err := repo.GetByPostID(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, s.ID, byPost.ID)

	moved, err := repo.UpdateTime(ctx, s.ID, at.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, moved.ScheduledAt.Equal(at.AddDate(0, 0, 1)))

	require.NoError(t, repo.Remove(ctx, s.ID))
	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateTime(ctx, "nope", at)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, "nope"), ErrNotFound)
	_, err = repo.GetByPostID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
