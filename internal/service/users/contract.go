package users

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	userRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/user"
)

// Repository интерфейс репозитория пользователей
type Repository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, telegramID int64, firstName, lastName *string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update userRepo.ProfileUpdate) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
