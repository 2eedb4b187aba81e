package promotions

import (
	"context"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Repository интерфейс репозитория акций
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context, activeOnly bool, now time.Time) ([]*domain.Promotion, error)
}

// TimeProvider интерфейс получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
