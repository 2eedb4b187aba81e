package domain

import "time"

// Service услуга салона; длительность определяет длину слота
type Service struct {
	ID              int64
	Name            string
	Category        *string
	Description     *string
	Price           float64
	DurationMinutes int
	ImageURL        *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
