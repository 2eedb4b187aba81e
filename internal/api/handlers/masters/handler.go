package masters

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	mastersService "github.com/llbeautybar/salon-booking-service/internal/service/masters"
)

const (
	msgInvalidMasterID  = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgNotFound         = "мастер не найден"
)

type Handler struct {
	service MasterService
	logger  Logger
}

func NewHandler(service MasterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/masters
// Query params: serviceId (optional)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var serviceID *int64
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /masters - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	list, err := h.service.List(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /masters - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := MastersResponse{Masters: make([]MasterResponse, 0, len(list))}
	for _, m := range list {
		resp.Masters = append(resp.Masters, FromDomain(m))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleGet GET /api/masters/{masterId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	masterID, ok := h.parseMasterID(w, r)
	if !ok {
		return
	}

	master, err := h.service.GetByID(r.Context(), masterID)
	if err != nil {
		switch {
		case errors.Is(err, mastersService.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id} - Not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /masters/{id} - Failed: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(master))
}

// HandleReviews GET /api/masters/{masterId}/reviews
func (h *Handler) HandleReviews(w http.ResponseWriter, r *http.Request) {
	masterID, ok := h.parseMasterID(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), masterID)
	if err != nil {
		switch {
		case errors.Is(err, mastersService.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/reviews - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /masters/{id}/reviews - Failed: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := ReviewsResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, ReviewFromDomain(review))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) parseMasterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id} - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return 0, false
	}
	return masterID, true
}
