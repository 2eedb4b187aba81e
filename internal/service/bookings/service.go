package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
)

// Service чтение записей клиента
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает сервис записей
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID возвращает запись пользователя.
// Чужие записи неотличимы от несуществующих.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings: failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// GetUserBookings возвращает записи пользователя,
// опционально отфильтрованные по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *string) ([]*domain.Booking, error) {
	var statusFilter *domain.BookingStatus
	if status != nil && *status != "" {
		parsed, ok := domain.ParseBookingStatus(*status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
		}
		statusFilter = &parsed
	}

	list, err := s.repo.GetByUserID(ctx, userID, statusFilter)
	if err != nil {
		s.logger.Error("Bookings: failed to list bookings of user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}
	return list, nil
}
