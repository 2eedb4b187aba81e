package create_booking

import (
	"context"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// HasActiveAt проверяет занятость слота; внутри транзакции строки
	// блокируются до её завершения
	HasActiveAt(ctx context.Context, masterID int64, date time.Time, bookingTime types.TimeString, excludeID *int64) (bool, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	ProvidesService(ctx context.Context, masterID, serviceID int64) (bool, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CertificateRepository интерфейс репозитория сертификатов
type CertificateRepository interface {
	GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Certificate, error)
}

// TransactionManager интерфейс менеджера транзакций.
// Проверка занятости и вставка выполняются в одной serializable-транзакции,
// частичный уникальный индекс в БД страхует от гонок между репликами.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс уведомлений о новых записях
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, master *domain.Master, service *domain.Service) error
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
