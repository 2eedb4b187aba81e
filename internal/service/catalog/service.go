package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
)

// Service каталог услуг салона
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает сервис каталога
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID возвращает услугу
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Catalog: failed to get service %d: %v", id, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	return service, nil
}

// List возвращает активные услуги, опционально в категории
func (s *Service) List(ctx context.Context, category *string) ([]*domain.Service, error) {
	list, err := s.repo.List(ctx, catalogRepo.Filter{
		Category:   category,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("Catalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}
	return list, nil
}

// Categories возвращает список категорий активных услуг
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: list categories: %v", ErrInternal, err)
	}
	return categories, nil
}
