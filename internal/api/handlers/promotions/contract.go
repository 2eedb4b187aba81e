package promotions

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

type PromotionService interface {
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
