package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/llbeautybar/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidMasterID  = "некорректный ID мастера"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgMasterNotFound   = "мастер не найден"
	msgInvalidDuration  = "некорректная длительность услуги"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleServiceSlots GET /api/services/{serviceId}/slots
// Query params: date (required, YYYY-MM-DD), masterId (optional)
func (h *Handler) HandleServiceSlots(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var masterID *int64
	if raw := r.URL.Query().Get("masterId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /services/{id}/slots - Invalid master ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMasterID)
			return
		}
		masterID = &id
	}

	date, ok := h.parseDate(w, r, "GET /services/{id}/slots")
	if !ok {
		return
	}

	h.execute(w, r, getAvailableSlots.Request{
		ServiceID: serviceID,
		MasterID:  masterID,
		Date:      date,
	})
}

// HandleMasterSlots GET /api/masters/{masterId}/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) HandleMasterSlots(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	rawServiceID := r.URL.Query().Get("serviceId")
	if rawServiceID == "" {
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(rawServiceID, 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, ok := h.parseDate(w, r, "GET /masters/{id}/slots")
	if !ok {
		return
	}

	h.execute(w, r, getAvailableSlots.Request{
		ServiceID: serviceID,
		MasterID:  &masterID,
		Date:      date,
	})
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request, route string) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return time.Time{}, false
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("%s - Invalid date %q: %v", route, raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, req getAvailableSlots.Request) {
	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GetAvailableSlots - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GetAvailableSlots - Master not found: master_id=%v", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GetAvailableSlots - Invalid duration: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GetAvailableSlots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GetAvailableSlots - Failed: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GetAvailableSlots - %d slots returned: service_id=%d, date=%s",
		len(resp.Slots), req.ServiceID, req.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
