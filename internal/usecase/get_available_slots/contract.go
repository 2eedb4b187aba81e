package get_available_slots

import (
	"context"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	List(ctx context.Context, filter masterRepo.Filter) ([]*domain.Master, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetOccupiedTimes возвращает занятые времена одного мастера на дату
	GetOccupiedTimes(ctx context.Context, masterID int64, date time.Time) ([]types.TimeString, error)
	// GetActiveByDate возвращает активные записи всех мастеров на дату
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
