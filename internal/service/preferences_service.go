package service

import (
	"context"
	"fmt"

	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/internal/transfer"
)

type PreferencesService interface {
	Get(ctx context.Context) (*models.Preferences, error)
	Update(ctx context.Context, upd *transfer.PreferencesUpdate) (*models.Preferences, error)
	SetTheme(ctx context.Context, theme string) (string, error)
}

type preferencesService struct {
	pref repository.PreferencesRepository
}

func NewPreferencesService(pref repository.PreferencesRepository) PreferencesService {
	return &preferencesService{pref: pref}
}

func (s *preferencesService) Get(ctx context.Context) (*models.Preferences, error) {
	return s.pref.Get(ctx)
}

func (s *preferencesService) Update(ctx context.Context, upd *transfer.PreferencesUpdate) (*models.Preferences, error) {
	prefs, err := s.pref.Get(ctx)
	if err != nil {
		return nil, err
	}

	if upd.Theme != nil {
		prefs.Theme = *upd.Theme
	}
	if upd.DefaultPlatforms != nil {
		prefs.DefaultPlatforms = upd.DefaultPlatforms
	}
	if upd.Notifications != nil {
		prefs.Notifications = *upd.Notifications
	}

	if err := s.pref.Save(ctx, prefs); err != nil {
		return nil, fmt.Errorf("error saving preferences: %w", err)
	}
	return prefs, nil
}

func (s *preferencesService) SetTheme(ctx context.Context, theme string) (string, error) {
	prefs, err := s.pref.Get(ctx)
	if err != nil {
		return "", err
	}
	if theme != "" {
		prefs.Theme = theme
		if err := s.pref.Save(ctx, prefs); err != nil {
			return "", fmt.Errorf("error saving preferences: %w", err)
		}
	}
	return prefs.Theme, nil
}
