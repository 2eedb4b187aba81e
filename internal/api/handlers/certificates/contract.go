package certificates

import (
	"context"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	certificatesService "github.com/llbeautybar/salon-booking-service/internal/service/certificates"
)

type CertificateService interface {
	Purchase(ctx context.Context, req certificatesService.PurchaseRequest) (*domain.Certificate, error)
	GetUserCertificates(ctx context.Context, userID int64, isUsed *bool) ([]*domain.Certificate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
