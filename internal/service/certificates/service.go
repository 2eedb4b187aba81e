package certificates

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	certificateRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/certificate"
)

// certificateValidityDays срок действия купленного сертификата
const certificateValidityDays = 365

// Service подарочные сертификаты
type Service struct {
	repo         Repository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис сертификатов
func NewService(repo Repository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{repo: repo, timeProvider: timeProvider, logger: logger}
}

// PurchaseRequest запрос на покупку сертификата.
// RecipientUserID == nil означает покупку для себя.
type PurchaseRequest struct {
	BuyerUserID     int64
	Amount          float64
	Category        *string
	Description     *string
	RecipientUserID *int64
}

// Purchase создает сертификат с годом действия.
// Код генерируется на границе хранилища.
func (s *Service) Purchase(ctx context.Context, req PurchaseRequest) (*domain.Certificate, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	owner := req.BuyerUserID
	if req.RecipientUserID != nil {
		owner = *req.RecipientUserID
	}

	expiresAt := s.timeProvider.Now().AddDate(0, 0, certificateValidityDays)
	cert, err := s.repo.Create(ctx, &domain.Certificate{
		Amount:            req.Amount,
		Category:          req.Category,
		Description:       req.Description,
		UserID:            &owner,
		PurchasedByUserID: &req.BuyerUserID,
		ExpiresAt:         &expiresAt,
	})
	if err != nil {
		s.logger.Error("Certificates: failed to create certificate for user %d: %v", owner, err)
		return nil, fmt.Errorf("%w: create certificate: %v", ErrInternal, err)
	}

	s.logger.Info("Certificates: certificate %d purchased by user %d", cert.ID, req.BuyerUserID)
	return cert, nil
}

// GetByIDAndUser возвращает сертификат пользователя
func (s *Service) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Certificate, error) {
	cert, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, certificateRepo.ErrCertificateNotFound) {
			return nil, ErrCertificateNotFound
		}
		s.logger.Error("Certificates: failed to get certificate %d: %v", id, err)
		return nil, fmt.Errorf("%w: get certificate: %v", ErrInternal, err)
	}
	return cert, nil
}

// GetUserCertificates возвращает сертификаты пользователя,
// опционально только неиспользованные
func (s *Service) GetUserCertificates(ctx context.Context, userID int64, isUsed *bool) ([]*domain.Certificate, error) {
	list, err := s.repo.GetByUser(ctx, userID, isUsed)
	if err != nil {
		s.logger.Error("Certificates: failed to list certificates of user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: list certificates: %v", ErrInternal, err)
	}
	return list, nil
}
