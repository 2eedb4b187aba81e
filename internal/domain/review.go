package domain

import "time"

// Review отзыв клиента о мастере
type Review struct {
	ID        int64
	MasterID  int64
	UserID    int64
	BookingID *int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
