package reschedule_booking

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	rescheduleBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/reschedule_booking"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (rescheduleBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return rescheduleBooking.Request{}, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return rescheduleBooking.Request{}, err
	}

	return rescheduleBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Date:      bookingDate,
		Time:      bookingTime,
	}, nil
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
