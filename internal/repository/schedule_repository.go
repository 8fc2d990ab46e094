package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"socialflow/internal/models"
	"socialflow/pkg/dates"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	GetByPostID(ctx context.Context, postID string) (*models.Schedule, error)
	List(ctx context.Context) ([]*models.Schedule, error)
	ListForDay(ctx context.Context, day time.Time) ([]*models.Schedule, error)
	ListForRange(ctx context.Context, start, end time.Time) ([]*models.Schedule, error)
	ListDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Schedule, error)
	UpdateTime(ctx context.Context, id string, scheduledAt time.Time) (*models.Schedule, error)
	Remove(ctx context.Context, id string) error
}

const scheduleColumns = "id, post_id, scheduled_at, created_at"

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	schedule.ID = id
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO schedules (id, post_id, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = r.db.ExecContext(ctx, query, schedule.ID, schedule.PostID, schedule.ScheduledAt, schedule.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrInvalidReference
		}
		slog.Error(err.Error())
		return err
	}
	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *scheduleRepository) GetByPostID(ctx context.Context, postID string) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE post_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, postID))
}

func (r *scheduleRepository) scanOne(row *sql.Row) (*models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(&s.ID, &s.PostID, &s.ScheduledAt, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		slog.Error(err.Error())
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepository) List(ctx context.Context) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY scheduled_at, created_at, id`
	return r.queryMany(ctx, query)
}

func (r *scheduleRepository) ListForDay(ctx context.Context, day time.Time) ([]*models.Schedule, error) {
	start := dates.StartOfDay(day)
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE scheduled_at >= $1 AND scheduled_at < $2 ORDER BY scheduled_at, created_at, id`
	return r.queryMany(ctx, query, start, start.AddDate(0, 0, 1))
}

func (r *scheduleRepository) ListForRange(ctx context.Context, start, end time.Time) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE scheduled_at >= $1 AND scheduled_at <= $2 ORDER BY scheduled_at, created_at, id`
	return r.queryMany(ctx, query, start, end)
}

func (r *scheduleRepository) ListDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE scheduled_at <= $1 ORDER BY scheduled_at, created_at, id`
	return r.queryMany(ctx, query, cutoff)
}

func (r *scheduleRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.ID, &s.PostID, &s.ScheduledAt, &s.CreatedAt); err != nil {
			slog.Error(err.Error())
			return nil, err
		}
		schedules = append(schedules, &s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) UpdateTime(ctx context.Context, id string, scheduledAt time.Time) (*models.Schedule, error) {
	query := `UPDATE schedules SET scheduled_at = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, scheduledAt, id)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *scheduleRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM schedules WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
