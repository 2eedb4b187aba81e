package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID записи"
	msgNotFound         = "запись не найдена"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ServiceID     int64   `json:"serviceId"`
	MasterID      int64   `json:"masterId"`
	BookingDate   string  `json:"bookingDate"`
	BookingTime   string  `json:"bookingTime"`
	Status        string  `json:"status"`
	Comment       *string `json:"comment,omitempty"`
	CertificateID *int64  `json:"certificateId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		MasterID:      b.MasterID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.BookingTime.String(),
		Status:        string(b.Status),
		Comment:       b.Comment,
		CertificateID: b.CertificateID,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
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

// Handle GET /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), user.ID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
