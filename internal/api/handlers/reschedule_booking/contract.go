package reschedule_booking

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	rescheduleBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/reschedule_booking"
)

type RescheduleBookingUseCase interface {
	Execute(ctx context.Context, req rescheduleBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
