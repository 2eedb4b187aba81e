package masters

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
)

// Repository интерфейс репозитория мастеров
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	List(ctx context.Context, filter masterRepo.Filter) ([]*domain.Master, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	GetByMaster(ctx context.Context, masterID int64) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
