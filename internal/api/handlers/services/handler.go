package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	catalogService "github.com/llbeautybar/salon-booking-service/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgNotFound         = "услуга не найдена"
)

// ServiceResponse HTTP-модель услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        *string `json:"category,omitempty"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// ServicesResponse HTTP-модель списка услуг
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// CategoriesResponse HTTP-модель списка категорий
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		ImageURL:        s.ImageURL,
	}
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/services
// Query params: category (optional)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var category *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = &raw
	}

	list, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ServicesResponse{Services: make([]ServiceResponse, 0, len(list))}
	for _, s := range list {
		resp.Services = append(resp.Services, FromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleGet GET /api/services/{serviceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	service, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id} - Not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /services/{id} - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(service))
}

// HandleCategories GET /api/services/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("GET /services/categories - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
