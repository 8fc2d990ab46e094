package service

import (
	"context"
	"fmt"

	"socialflow/internal/models"
	"socialflow/internal/repository"
)

type PlatformService interface {
	List(ctx context.Context) ([]*models.Platform, error)
	Connect(ctx context.Context, platformID, handle string) (*models.Platform, error)
	Disconnect(ctx context.Context, platformID string) (*models.Platform, error)
}

type platformService struct {
	pl repository.PlatformRepository
}

func NewPlatformService(pl repository.PlatformRepository) PlatformService {
	return &platformService{pl: pl}
}

func (s *platformService) List(ctx context.Context) ([]*models.Platform, error) {
	return s.pl.List(ctx)
}

func (s *platformService) Connect(ctx context.Context, platformID, handle string) (*models.Platform, error) {
	platform, err := s.pl.GetByID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	platform.Status = models.PlatformStatusConnected
	if handle != "" {
		platform.Handle = handle
	} else {
		platform.Handle = fmt.Sprintf("@%s_account", platformID)
	}

	if err := s.pl.Update(ctx, platform); err != nil {
		return nil, fmt.Errorf("error updating platform: %w", err)
	}
	return platform, nil
}

func (s *platformService) Disconnect(ctx context.Context, platformID string) (*models.Platform, error) {
	platform, err := s.pl.GetByID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	platform.Status = models.PlatformStatusDisconnected
	platform.Handle = ""

	if err := s.pl.Update(ctx, platform); err != nil {
		return nil, fmt.Errorf("error updating platform: %w", err)
	}
	return platform, nil
}
