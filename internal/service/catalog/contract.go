package catalog

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
)

// Repository интерфейс репозитория услуг
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, filter catalogRepo.Filter) ([]*domain.Service, error)
	Categories(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
