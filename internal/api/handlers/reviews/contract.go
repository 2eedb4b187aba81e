package reviews

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	reviewsService "github.com/llbeautybar/salon-booking-service/internal/service/reviews"
)

type ReviewService interface {
	Create(ctx context.Context, req reviewsService.CreateRequest) (*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
