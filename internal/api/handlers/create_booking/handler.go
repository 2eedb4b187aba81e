package create_booking

import (
	"errors"
	"net/http"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	createBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateTime       = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput          = "некорректные данные запроса"
	msgSlotTaken             = "выбранное время уже занято"
	msgServiceNotFound       = "услуга не найдена"
	msgMasterNotFound        = "мастер не найден"
	msgMasterServiceMismatch = "мастер не оказывает выбранную услугу"
	msgCertificateInvalid    = "сертификат недоступен для применения"
	msgPastTime              = "нельзя записаться на прошедшее время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: master_id=%d, date=%s, time=%s",
				req.MasterID, req.BookingDate, req.BookingTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrMasterNotFound):
			h.logger.Warn("POST /bookings - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createBooking.ErrMasterServiceMismatch):
			h.logger.Warn("POST /bookings - Master/service mismatch: master_id=%d, service_id=%d",
				req.MasterID, req.ServiceID)
			handlers.RespondBadRequest(w, msgMasterServiceMismatch)

		case errors.Is(err, createBooking.ErrCertificateInvalid):
			h.logger.Warn("POST /bookings - Certificate not applicable: user_id=%d", user.ID)
			handlers.RespondBadRequest(w, msgCertificateInvalid)

		case errors.Is(err, createBooking.ErrPastTime):
			h.logger.Warn("POST /bookings - Past time: date=%s, time=%s", req.BookingDate, req.BookingTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, master_id=%d",
		booking.ID, user.ID, booking.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(booking))
}
