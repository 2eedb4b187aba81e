package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	settingsRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/settings"
)

// Service настройки салона
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает сервис настроек
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get возвращает настройки салона, создавая пустую строку
// при первом обращении
func (s *Service) Get(ctx context.Context) (*domain.SalonSettings, error) {
	found, err := s.repo.Get(ctx)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Settings: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: get settings: %v", ErrInternal, err)
	}

	created, err := s.repo.CreateDefault(ctx)
	if err != nil {
		s.logger.Error("Settings: failed to create default settings: %v", err)
		return nil, fmt.Errorf("%w: create default settings: %v", ErrInternal, err)
	}

	s.logger.Info("Settings: default settings row created")
	return created, nil
}
