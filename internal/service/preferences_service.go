package service

import (
	"context"
	"errors"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

type PreferencesService interface {
	Get(ctx context.Context, email string) (*dto.PreferenceResponse, error)
	Set(ctx context.Context, email string, enabled bool) (*dto.PreferenceResponse, error)
}

type preferencesService struct {
	repo repository.PreferencesRepository
}

func NewPreferencesService(repo repository.PreferencesRepository) PreferencesService {
	return &preferencesService{repo: repo}
}

// Get returns the stored preference, or the default (notifications off) when
// the user has no row yet.
func (s *preferencesService) Get(ctx context.Context, email string) (*dto.PreferenceResponse, error) {
	pref, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return &dto.PreferenceResponse{Email: email, EmailNotifications: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.PreferenceResponse{Email: pref.Email, EmailNotifications: pref.EmailNotifications}, nil
}

// Set upserts the preference row for the user.
func (s *preferencesService) Set(ctx context.Context, email string, enabled bool) (*dto.PreferenceResponse, error) {
	pref := model.UserPreference{Email: email, EmailNotifications: enabled}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		err = s.repo.Create(ctx, pref)
	case err == nil:
		err = s.repo.Update(ctx, email, pref)
	}
	if err != nil {
		return nil, err
	}
	return &dto.PreferenceResponse{Email: email, EmailNotifications: enabled}, nil
}
