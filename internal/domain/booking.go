package domain

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// BookingStatus статус записи в салон
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus валидирует и конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking запись клиента к мастеру на услугу
type Booking struct {
	ID            int64
	UserID        int64
	ServiceID     int64
	MasterID      int64
	BookingDate   time.Time
	BookingTime   types.TimeString
	Status        BookingStatus
	Comment       *string
	CertificateID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive возвращает true, если запись занимает слот
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal возвращает true, если запись в конечном статусе
// и не допускает переходов
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// StartsAt возвращает момент начала записи (дата + время слота)
func (b *Booking) StartsAt() time.Time {
	minutes := b.BookingTime.Minutes()
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		minutes/60, minutes%60, 0, 0, b.BookingDate.Location(),
	)
}
