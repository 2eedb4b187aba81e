package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
)

// Request модель запроса на отмену записи
type Request struct {
	UserID    int64
	BookingID int64
}

// Usecase отмена записи клиентом
type Usecase struct {
	bookings     BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает usecase отмены записи
func NewUsecase(bookings BookingRepository, timeProvider TimeProvider, logger Logger) *Usecase {
	return &Usecase{
		bookings:     bookings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute отменяет запись. Отмена допускается не позднее чем за
// domain.CancellationNoticeHours часов до начала; чужие записи
// неотличимы от несуществующих.
func (u *Usecase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	if req.UserID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: user id and booking id must be positive", ErrInvalidInput)
	}

	booking, err := u.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		u.logger.Error("CancelBooking: failed to get booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		return nil, ErrBookingNotFound
	}

	if booking.IsTerminal() {
		return nil, ErrInvalidState
	}

	now := u.timeProvider.Now()
	deadline := booking.StartsAt().Add(-domain.CancellationNoticeHours * time.Hour)
	if now.After(deadline) {
		return nil, ErrCancellationWindow
	}

	if err := u.bookings.UpdateStatus(ctx, req.BookingID, domain.StatusCancelled); err != nil {
		u.logger.Error("CancelBooking: failed to cancel booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: update status: %v", ErrInternal, err)
	}

	u.logger.Info("CancelBooking: booking %d cancelled by user %d", req.BookingID, req.UserID)

	booking.Status = domain.StatusCancelled
	return booking, nil
}
