package domain

import "github.com/llbeautybar/salon-booking-service/pkg/types"

// TimeSlot кандидат на бронирование. Значения эфемерны:
// пересчитываются на каждый запрос и никогда не сохраняются.
type TimeSlot struct {
	Time       types.TimeString
	Available  bool
	MasterID   int64
	MasterName string
}
