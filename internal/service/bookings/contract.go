package bookings

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Repository интерфейс репозитория записей
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
