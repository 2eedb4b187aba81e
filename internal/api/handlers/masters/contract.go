package masters

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

type MasterService interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	List(ctx context.Context, serviceID *int64) ([]*domain.Master, error)
	GetReviews(ctx context.Context, masterID int64) ([]*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
