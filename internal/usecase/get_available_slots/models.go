package get_available_slots

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Request модель запроса доступных слотов.
// MasterID == nil означает запрос по всем активным мастерам,
// оказывающим услугу.
type Request struct {
	ServiceID int64
	MasterID  *int64
	Date      time.Time
}

// Response упорядоченный список слотов на дату
type Response struct {
	Date  time.Time
	Slots []domain.TimeSlot
}
