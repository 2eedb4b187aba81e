package domain

import "time"

// Certificate подарочный сертификат
type Certificate struct {
	ID                int64
	Code              string
	Amount            float64
	Category          *string
	Description       *string // произвольный JSON-блоб с деталями сертификата
	ImageURL          *string
	UserID            *int64 // владелец
	PurchasedByUserID *int64 // покупатель
	IsUsed            bool
	UsedAt            *time.Time
	ExpiresAt         *time.Time
	CreatedAt         time.Time
}

// IsExpired возвращает true, если срок действия сертификата истёк
func (c *Certificate) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
