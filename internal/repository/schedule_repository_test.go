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

func scheduleRows(cols ...[]driverValue) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "post_id", "scheduled_at", "created_at"})
	for _, c := range cols {
		rows.AddRow(c[0], c[1], c[2], c[3])
	}
	return rows
}

type driverValue = interface{}

func scheduleFor(postID string, at time.Time) *models.Schedule {
	return &models.Schedule{PostID: postID, ScheduledAt: at}
}

func TestScheduleRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)
	ctx := context.Background()
	at := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, post_id, scheduled_at, created_at FROM schedules WHERE id = $1")).
			WithArgs("s1").
			WillReturnRows(scheduleRows([]driverValue{"s1", "p1", at, at}))

		got, err := repo.GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "p1", got.PostID)
		assert.True(t, got.ScheduledAt.Equal(at))
	})

	t.Run("missing maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, post_id, scheduled_at, created_at FROM schedules WHERE id = $1")).
			WithArgs("missing").
			WillReturnRows(scheduleRows())

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)
	ctx := context.Background()
	at := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

	t.Run("assigns id", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedules")).
			WithArgs(sqlmock.AnyArg(), "p1", at, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := scheduleFor("p1", at)
		require.NoError(t, repo.Create(ctx, s))
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("foreign key violation maps to ErrInvalidReference", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedules")).
			WithArgs(sqlmock.AnyArg(), "ghost", at, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Create(ctx, scheduleFor("ghost", at))
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryListForDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)
	ctx := context.Background()

	dayStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	morning := dayStart.Add(9*time.Hour + 30*time.Minute)
	afternoon := dayStart.Add(14 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules WHERE scheduled_at >= $1 AND scheduled_at < $2")).
		WithArgs(dayStart, dayStart.AddDate(0, 0, 1)).
		WillReturnRows(scheduleRows(
			[]driverValue{"s1", "p1", morning, morning},
			[]driverValue{"s2", "p2", afternoon, afternoon},
		))

	got, err := repo.ListForDay(ctx, dayStart.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryUpdateTimeMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduleRepository(db)
	at := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules SET scheduled_at = $1 WHERE id = $2")).
		WithArgs(at, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.UpdateTime(context.Background(), "missing", at)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
