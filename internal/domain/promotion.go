package domain

import "time"

// Promotion акция салона
type Promotion struct {
	ID              int64
	Title           string
	Description     *string
	DiscountPercent float64
	ImageURL        *string
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	CreatedAt       time.Time
}

// IsRunning возвращает true, если акция активна в указанный момент
func (p *Promotion) IsRunning(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}
