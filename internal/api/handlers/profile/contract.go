package profile

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	userRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/user"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, update userRepo.ProfileUpdate) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
