package domain

import "time"

// User клиент салона, идентифицируется по Telegram ID
type User struct {
	ID         int64
	TelegramID int64
	FirstName  *string
	LastName   *string
	Phone      *string
	Email      *string
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
