package settings

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
