package reschedule_booking

import (
	"context"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetByID внутри транзакции блокирует строку до её завершения
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	HasActiveAt(ctx context.Context, masterID int64, date time.Time, bookingTime types.TimeString, excludeID *int64) (bool, error)
	// Reschedule переносит запись и сбрасывает статус в pending
	Reschedule(ctx context.Context, id int64, date time.Time, bookingTime types.TimeString) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
