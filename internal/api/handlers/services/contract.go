package services

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

type CatalogService interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, category *string) ([]*domain.Service, error)
	Categories(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
