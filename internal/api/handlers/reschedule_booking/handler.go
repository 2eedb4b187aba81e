package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	rescheduleBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "запись не найдена"
	msgAlreadyFinished    = "запись уже завершена или отменена"
	msgSlotTaken          = "выбранное время уже занято"
	msgPastTime           = "нельзя перенести запись на прошедшее время"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID, bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/reschedule - Already finished: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyFinished)

		case errors.Is(err, rescheduleBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings/{id}/reschedule - Slot taken: booking_id=%d, date=%s, time=%s",
				bookingID, req.BookingDate, req.BookingTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rescheduleBooking.ErrPastTime):
			h.logger.Warn("POST /bookings/{id}/reschedule - Past time: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking moved: booking_id=%d, date=%s, time=%s",
		bookingID, req.BookingDate, req.BookingTime)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
