package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/internal/service"
)

func TestPublishDue(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	sr := repository.NewMemoryScheduleRepository()
	sched := service.NewSchedulerService(pr, sr)

	overdue := &models.Post{Title: "Overdue", Content: "c", Platforms: []string{"twitter"}}
	require.NoError(t, pr.Create(ctx, overdue))
	_, err := sched.SchedulePost(ctx, overdue.ID, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	future := &models.Post{Title: "Future", Content: "c", Platforms: []string{"twitter"}}
	require.NoError(t, pr.Create(ctx, future))
	_, err = sched.SchedulePost(ctx, future.ID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	NewPublishDueJob(sr, sched).PublishDue()

	got, err := pr.GetByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, got.Status)

	stillScheduled, err := pr.GetByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, stillScheduled.Status)

	remaining, err := sr.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, future.ID, remaining[0].PostID)
}
