package get_available_slots

import (
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// generateSlots строит сетку слотов одного мастера на день.
// Слоты идут с шагом domain.SlotStepMinutes от начала рабочего дня;
// слот выдаётся, пока услуга целиком помещается до закрытия.
// Занятые времена помечаются Available=false, но из сетки не исключаются.
func generateSlots(hours domain.DayHours, durationMinutes int, occupied map[types.TimeString]struct{}, master *domain.Master) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	slots := make([]domain.TimeSlot, 0)
	cursor := hours.Start

	for {
		serviceEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Услуга вышла за пределы суток — сетка закончилась
			break
		}
		if serviceEnd.IsAfter(hours.End) {
			break
		}

		_, taken := occupied[cursor]
		slots = append(slots, domain.TimeSlot{
			Time:       cursor,
			Available:  !taken,
			MasterID:   master.ID,
			MasterName: master.Name,
		})

		next, err := cursor.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		cursor = next
	}

	return slots, nil
}
