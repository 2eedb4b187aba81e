package cancel_booking

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	ServiceID   int64  `json:"serviceId"`
	MasterID    int64  `json:"masterId"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		MasterID:    b.MasterID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		BookingTime: b.BookingTime.String(),
		Status:      string(b.Status),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}
