package create_booking

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        int64
	ServiceID     int64
	MasterID      int64
	Date          time.Time
	Time          types.TimeString
	Comment       *string
	CertificateID *int64
}
