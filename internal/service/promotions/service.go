package promotions

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	promotionRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/promotion"
)

// Service акции салона
type Service struct {
	repo         Repository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис акций
func NewService(repo Repository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{repo: repo, timeProvider: timeProvider, logger: logger}
}

// GetByID возвращает акцию
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	promotion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Promotions: failed to get promotion %d: %v", id, err)
		return nil, fmt.Errorf("%w: get promotion: %v", ErrInternal, err)
	}
	return promotion, nil
}

// List возвращает акции; activeOnly ограничивает выдачу идущими сейчас
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error) {
	list, err := s.repo.List(ctx, activeOnly, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Promotions: failed to list promotions: %v", err)
		return nil, fmt.Errorf("%w: list promotions: %v", ErrInternal, err)
	}
	return list, nil
}
