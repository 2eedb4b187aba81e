package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	certificateRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/certificate"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
)

// Usecase создание записи в салон
type Usecase struct {
	bookings     BookingRepository
	masters      MasterRepository
	services     ServiceRepository
	certificates CertificateRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает usecase создания записи
func NewUsecase(
	bookings BookingRepository,
	masters MasterRepository,
	services ServiceRepository,
	certificates CertificateRepository,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookings:     bookings,
		masters:      masters,
		services:     services,
		certificates: certificates,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает запись со статусом pending.
// Проверка занятости слота и вставка выполняются в одной
// serializable-транзакции; уникальный индекс активных записей
// в БД закрывает гонку между параллельными запросами.
func (u *Usecase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	now := u.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		return nil, err
	}

	service, err := u.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		u.logger.Error("CreateBooking: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return nil, ErrServiceNotFound
	}

	master, err := u.masters.GetByID(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return nil, ErrMasterNotFound
		}
		u.logger.Error("CreateBooking: failed to get master %d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: get master: %v", ErrInternal, err)
	}
	if !master.IsActive {
		return nil, ErrMasterNotFound
	}

	provides, err := u.masters.ProvidesService(ctx, req.MasterID, req.ServiceID)
	if err != nil {
		u.logger.Error("CreateBooking: failed to check master %d services: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: check master services: %v", ErrInternal, err)
	}
	if !provides {
		return nil, ErrMasterServiceMismatch
	}

	if req.CertificateID != nil {
		if err := u.checkCertificate(ctx, *req.CertificateID, req.UserID); err != nil {
			return nil, err
		}
	}

	var created *domain.Booking
	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := u.bookings.HasActiveAt(txCtx, req.MasterID, req.Date, req.Time, nil)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if taken {
			return ErrSlotTaken
		}

		created, err = u.bookings.Create(txCtx, &domain.Booking{
			UserID:        req.UserID,
			ServiceID:     req.ServiceID,
			MasterID:      req.MasterID,
			BookingDate:   req.Date,
			BookingTime:   req.Time,
			Status:        domain.StatusPending,
			Comment:       req.Comment,
			CertificateID: req.CertificateID,
		})
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		u.logger.Error("CreateBooking: transaction failed for master %d at %s %s: %v",
			req.MasterID, req.Date.Format(domain.DateFormat), req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u.logger.Info("CreateBooking: booking %d created for master %d at %s %s",
		created.ID, req.MasterID, req.Date.Format(domain.DateFormat), req.Time)

	// Уведомление после коммита: его сбой не откатывает запись
	if u.notifier != nil {
		if err := u.notifier.NotifyBookingCreated(ctx, created, master, service); err != nil {
			u.logger.Warn("CreateBooking: failed to notify about booking %d: %v", created.ID, err)
		}
	}

	return created, nil
}

func (u *Usecase) checkCertificate(ctx context.Context, certificateID, userID int64) error {
	cert, err := u.certificates.GetByIDAndUser(ctx, certificateID, userID)
	if err != nil {
		if errors.Is(err, certificateRepo.ErrCertificateNotFound) {
			return ErrCertificateInvalid
		}
		u.logger.Error("CreateBooking: failed to get certificate %d: %v", certificateID, err)
		return fmt.Errorf("%w: get certificate: %v", ErrInternal, err)
	}
	if cert.IsUsed || cert.IsExpired(u.timeProvider.Now()) {
		return ErrCertificateInvalid
	}
	return nil
}
