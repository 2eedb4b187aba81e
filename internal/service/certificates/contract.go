package certificates

import (
	"context"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Repository интерфейс репозитория сертификатов
type Repository interface {
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Certificate, error)
	GetByUser(ctx context.Context, userID int64, isUsed *bool) ([]*domain.Certificate, error)
}

// TimeProvider интерфейс получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
