package get_available_slots

import (
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/llbeautybar/salon-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP-модель слота
type SlotResponse struct {
	Time       string `json:"time"`
	Available  bool   `json:"available"`
	MasterID   int64  `json:"masterId"`
	MasterName string `json:"masterName"`
}

// SlotsResponse HTTP-модель списка слотов на дату
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:       s.Time.String(),
			Available:  s.Available,
			MasterID:   s.MasterID,
			MasterName: s.MasterName,
		})
	}
	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
