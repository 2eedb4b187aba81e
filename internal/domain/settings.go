package domain

import "time"

// SalonSettings общие настройки салона, отображаемые в мини-приложении
type SalonSettings struct {
	ID                int64
	WorkingHours      *string // JSON-блоб для витрины, не участвует в расчёте слотов
	Address           *string
	Phone             *string
	Email             *string
	SocialLinks       *string
	MapCoordinates    *string
	PrivacyPolicyText *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
