package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/internal/transfer"
)

type PostService interface {
	CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	PostInfo(ctx context.Context, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, postID string, upd *transfer.PostUpdate) (*models.Post, error)
}

type postService struct {
	pr repository.PostRepository
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr}
}

// CreatePost creates a draft, or publishes immediately when the caller
// asks for it (the composer's "post now" path).
func (s *postService) CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error) {
	if pc.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if pc.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	post := models.Post{
		Title:     pc.Title,
		Content:   pc.Content,
		Platforms: pc.Platforms,
		Status:    models.PostStatusDraft,
	}
	if pc.Publish {
		if len(pc.Platforms) == 0 {
			return nil, fmt.Errorf("%w: at least one platform is required", ErrValidation)
		}
		now := time.Now().UTC()
		post.Status = models.PostStatusPublished
		post.PublishedAt = &now
	}

	if err := s.pr.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return &post, nil
}

func (s *postService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) PostInfo(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost merges content fields into the post. Status and scheduling
// fields are not writable here; the scheduler owns those.
func (s *postService) UpdatePost(ctx context.Context, postID string, upd *transfer.PostUpdate) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		post.Title = *upd.Title
	}
	if upd.Content != nil {
		if *upd.Content == "" {
			return nil, fmt.Errorf("%w: content is required", ErrValidation)
		}
		post.Content = *upd.Content
	}
	if upd.Platforms != nil {
		post.Platforms = upd.Platforms
	}

	if err := s.pr.Update(ctx, post); err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}
