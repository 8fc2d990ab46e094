package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"socialflow/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	post.ID = id
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	query := `
		INSERT INTO posts (id, title, content, platforms, status, created_at, published_at, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, pq.Array(post.Platforms),
		post.Status, post.CreatedAt, post.PublishedAt, post.ScheduledFor)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, title, content, platforms, status, created_at, published_at, scheduled_for FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, pq.Array(&post.Platforms),
		&post.Status, &post.CreatedAt, &post.PublishedAt, &post.ScheduledFor)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		slog.Error(err.Error())
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, title, content, platforms, status, created_at, published_at, scheduled_for FROM posts ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, pq.Array(&post.Platforms),
			&post.Status, &post.CreatedAt, &post.PublishedAt, &post.ScheduledFor)
		if err != nil {
			slog.Error(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, platforms = $3, status = $4,
			published_at = $5, scheduled_for = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, pq.Array(post.Platforms), post.Status,
		post.PublishedAt, post.ScheduledFor, post.ID)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`
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
