package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	UserID    int64
	BookingID int64
	Date      time.Time
	Time      types.TimeString
}

// Usecase перенос записи на другое время
type Usecase struct {
	bookings     BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает usecase переноса записи
func NewUsecase(
	bookings BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookings:     bookings,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute переносит запись на новые дату и время.
// Подтверждённая запись после переноса снова ожидает подтверждения,
// поэтому статус сбрасывается в pending. При проверке занятости
// переносимая запись исключается: перенос на собственный слот
// конфликтом не считается.
func (u *Usecase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	if err := validateRequest(req, u.timeProvider.Now()); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err := u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = u.bookings.GetByID(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if booking.UserID != req.UserID {
			return ErrBookingNotFound
		}
		if booking.IsTerminal() {
			return ErrInvalidState
		}

		taken, err := u.bookings.HasActiveAt(txCtx, booking.MasterID, req.Date, req.Time, &booking.ID)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if taken {
			return ErrSlotTaken
		}

		if err := u.bookings.Reschedule(txCtx, booking.ID, req.Date, req.Time); err != nil {
			return fmt.Errorf("reschedule: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound), errors.Is(err, ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, ErrInvalidState):
			return nil, ErrInvalidState
		case errors.Is(err, ErrSlotTaken), errors.Is(err, bookingRepo.ErrSlotTaken):
			return nil, ErrSlotTaken
		}
		u.logger.Error("RescheduleBooking: transaction failed for booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u.logger.Info("RescheduleBooking: booking %d moved to %s %s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.Time)

	booking.BookingDate = req.Date
	booking.BookingTime = req.Time
	booking.Status = domain.StatusPending
	return booking, nil
}

func validateRequest(req Request, now time.Time) error {
	if req.UserID <= 0 || req.BookingID <= 0 {
		return fmt.Errorf("%w: user id and booking id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := types.NewTimeStringFromString(req.Time.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	minutes := req.Time.Minutes()
	startsAt := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		minutes/60, minutes%60, 0, 0, now.Location(),
	)
	if startsAt.Before(now) {
		return ErrPastTime
	}
	return nil
}
