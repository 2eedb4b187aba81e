package masters

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
)

// Service каталог мастеров
type Service struct {
	repo    Repository
	reviews ReviewRepository
	logger  Logger
}

// NewService создает сервис мастеров
func NewService(repo Repository, reviews ReviewRepository, logger Logger) *Service {
	return &Service{repo: repo, reviews: reviews, logger: logger}
}

// GetByID возвращает мастера
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	master, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return nil, ErrMasterNotFound
		}
		s.logger.Error("Masters: failed to get master %d: %v", id, err)
		return nil, fmt.Errorf("%w: get master: %v", ErrInternal, err)
	}
	return master, nil
}

// List возвращает активных мастеров, опционально оказывающих услугу
func (s *Service) List(ctx context.Context, serviceID *int64) ([]*domain.Master, error) {
	list, err := s.repo.List(ctx, masterRepo.Filter{
		ServiceID:  serviceID,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("Masters: failed to list masters: %v", err)
		return nil, fmt.Errorf("%w: list masters: %v", ErrInternal, err)
	}
	return list, nil
}

// GetReviews возвращает отзывы о мастере
func (s *Service) GetReviews(ctx context.Context, masterID int64) ([]*domain.Review, error) {
	if _, err := s.GetByID(ctx, masterID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetByMaster(ctx, masterID)
	if err != nil {
		s.logger.Error("Masters: failed to get reviews of master %d: %v", masterID, err)
		return nil, fmt.Errorf("%w: get reviews: %v", ErrInternal, err)
	}
	return reviews, nil
}
