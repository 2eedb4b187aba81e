package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
)

// Service отзывы о мастерах
type Service struct {
	repo      Repository
	masters   MasterRepository
	bookings  BookingRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает сервис отзывов
func NewService(
	repo Repository,
	masters MasterRepository,
	bookings BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		masters:   masters,
		bookings:  bookings,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateRequest запрос на создание отзыва
type CreateRequest struct {
	UserID    int64
	MasterID  int64
	BookingID *int64
	Rating    int
	Comment   *string
}

// Create создает отзыв и пересчитывает рейтинг мастера.
// Вставка и пересчёт выполняются в одной транзакции, чтобы рейтинг
// в карточке мастера не расходился с его отзывами.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Review, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	var created *domain.Review
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, &domain.Review{
			MasterID:  req.MasterID,
			UserID:    req.UserID,
			BookingID: req.BookingID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		})
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		sum, count, err := s.repo.SumRatings(txCtx, req.MasterID)
		if err != nil {
			return fmt.Errorf("sum ratings: %w", err)
		}

		rating := 0.0
		if count > 0 {
			rating = float64(sum) / float64(count)
		}
		if err := s.masters.UpdateRating(txCtx, req.MasterID, rating, count); err != nil {
			return fmt.Errorf("update rating: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Reviews: failed to create review for master %d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Reviews: review %d created for master %d by user %d", created.ID, req.MasterID, req.UserID)
	return created, nil
}

// GetByMaster возвращает отзывы о мастере
func (s *Service) GetByMaster(ctx context.Context, masterID int64) ([]*domain.Review, error) {
	list, err := s.repo.GetByMaster(ctx, masterID)
	if err != nil {
		s.logger.Error("Reviews: failed to list reviews of master %d: %v", masterID, err)
		return nil, fmt.Errorf("%w: list reviews: %v", ErrInternal, err)
	}
	return list, nil
}

func (s *Service) validate(ctx context.Context, req CreateRequest) error {
	if req.UserID <= 0 || req.MasterID <= 0 {
		return fmt.Errorf("%w: user id and master id must be positive", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if _, err := s.masters.GetByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return ErrMasterNotFound
		}
		s.logger.Error("Reviews: failed to get master %d: %v", req.MasterID, err)
		return fmt.Errorf("%w: get master: %v", ErrInternal, err)
	}

	if req.BookingID != nil {
		booking, err := s.bookings.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Reviews: failed to get booking %d: %v", *req.BookingID, err)
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}
		if booking.UserID != req.UserID || booking.MasterID != req.MasterID {
			return ErrBookingNotFound
		}
		if booking.Status != domain.StatusCompleted {
			return ErrBookingNotCompleted
		}
	}

	exists, err := s.repo.Exists(ctx, req.UserID, req.MasterID, req.BookingID)
	if err != nil {
		s.logger.Error("Reviews: failed to check existing review: %v", err)
		return fmt.Errorf("%w: check existing review: %v", ErrInternal, err)
	}
	if exists {
		return ErrAlreadyReviewed
	}

	return nil
}
