package masters

import (
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// MasterResponse HTTP-модель мастера
type MasterResponse struct {
	ID             int64                      `json:"id"`
	Name           string                     `json:"name"`
	Specialization *string                    `json:"specialization,omitempty"`
	PhotoURL       *string                    `json:"photoUrl,omitempty"`
	WorkSchedule   map[string]DayHoursPayload `json:"workSchedule,omitempty"`
	Rating         float64                    `json:"rating"`
	ReviewsCount   int                        `json:"reviewsCount"`
}

// DayHoursPayload HTTP-модель интервала рабочего дня
type DayHoursPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MastersResponse HTTP-модель списка мастеров
type MastersResponse struct {
	Masters []MasterResponse `json:"masters"`
}

// ReviewResponse HTTP-модель отзыва
type ReviewResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ReviewsResponse HTTP-модель списка отзывов
type ReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(m *domain.Master) MasterResponse {
	resp := MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		PhotoURL:       m.PhotoURL,
		Rating:         m.Rating,
		ReviewsCount:   m.ReviewsCount,
	}
	if len(m.WorkSchedule) > 0 {
		resp.WorkSchedule = make(map[string]DayHoursPayload, len(m.WorkSchedule))
		for day, hours := range m.WorkSchedule {
			resp.WorkSchedule[day] = DayHoursPayload{
				Start: hours.Start.String(),
				End:   hours.End.String(),
			}
		}
	}
	return resp
}

// ReviewFromDomain конвертирует отзыв в HTTP response
func ReviewFromDomain(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
