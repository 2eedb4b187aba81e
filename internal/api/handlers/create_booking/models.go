package create_booking

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	createBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/create_booking"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64   `json:"serviceId"`
	MasterID      int64   `json:"masterId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	BookingTime   string  `json:"bookingTime"` // "10:00"
	Comment       *string `json:"comment,omitempty"`
	CertificateID *int64  `json:"certificateId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ServiceID     int64   `json:"serviceId"`
	MasterID      int64   `json:"masterId"`
	BookingDate   string  `json:"bookingDate"`
	BookingTime   string  `json:"bookingTime"`
	Status        string  `json:"status"`
	Comment       *string `json:"comment,omitempty"`
	CertificateID *int64  `json:"certificateId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return createBooking.Request{}, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		UserID:        userID,
		ServiceID:     r.ServiceID,
		MasterID:      r.MasterID,
		Date:          bookingDate,
		Time:          bookingTime,
		Comment:       r.Comment,
		CertificateID: r.CertificateID,
	}, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		MasterID:      b.MasterID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.BookingTime.String(),
		Status:        string(b.Status),
		Comment:       b.Comment,
		CertificateID: b.CertificateID,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
