package settings

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Repository интерфейс репозитория настроек салона
type Repository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
	CreateDefault(ctx context.Context) (*domain.SalonSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
