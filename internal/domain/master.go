package domain

import "time"

// Master мастер салона — бронируемый ресурс
type Master struct {
	ID             int64
	Name           string
	Specialization *string
	Phone          *string
	TelegramID     *int64
	PhotoURL       *string
	WorkSchedule   WorkSchedule
	Rating         float64
	ReviewsCount   int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
