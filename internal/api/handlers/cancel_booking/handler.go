package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	cancelBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID записи"
	msgNotFound           = "запись не найдена"
	msgAlreadyFinished    = "запись уже завершена или отменена"
	msgCancellationWindow = "отмена возможна не позднее чем за 24 часа до начала"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), cancelBooking.Request{
		UserID:    user.ID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/cancel - Already finished: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyFinished)

		case errors.Is(err, cancelBooking.ErrCancellationWindow):
			h.logger.Warn("POST /bookings/{id}/cancel - Window closed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCancellationWindow)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
