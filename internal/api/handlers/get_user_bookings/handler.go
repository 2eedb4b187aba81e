package get_user_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidStatus = "некорректный статус записи"
)

// BookingResponse HTTP-модель записи в списке
type BookingResponse struct {
	ID          int64  `json:"id"`
	ServiceID   int64  `json:"serviceId"`
	MasterID    int64  `json:"masterId"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// BookingsResponse HTTP-модель списка записей
type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
// Query params: status (optional: pending|confirmed|completed|cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	list, err := h.service.GetUserBookings(r.Context(), user.ID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: user_id=%d", user.ID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := BookingsResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:          b.ID,
			ServiceID:   b.ServiceID,
			MasterID:    b.MasterID,
			BookingDate: b.BookingDate.Format(domain.DateFormat),
			BookingTime: b.BookingTime.String(),
			Status:      string(b.Status),
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
