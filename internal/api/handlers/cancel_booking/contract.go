package cancel_booking

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	cancelBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, req cancelBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
