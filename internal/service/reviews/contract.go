package reviews

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Repository интерфейс репозитория отзывов
type Repository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Exists(ctx context.Context, userID, masterID int64, bookingID *int64) (bool, error)
	GetByMaster(ctx context.Context, masterID int64) ([]*domain.Review, error)
	SumRatings(ctx context.Context, masterID int64) (sum int, count int, err error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	UpdateRating(ctx context.Context, masterID int64, rating float64, reviewsCount int) error
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
