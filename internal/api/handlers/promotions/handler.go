package promotions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	promotionsService "github.com/llbeautybar/salon-booking-service/internal/service/promotions"
)

const (
	msgInvalidPromotionID = "некорректный ID акции"
	msgInvalidActive      = "некорректное значение active, ожидается true или false"
	msgNotFound           = "акция не найдена"
)

// PromotionResponse HTTP-модель акции
type PromotionResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	DiscountPercent float64 `json:"discountPercent"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
}

// PromotionsResponse HTTP-модель списка акций
type PromotionsResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		ImageURL:        p.ImageURL,
		StartDate:       p.StartDate.Format(domain.DateFormat),
		EndDate:         p.EndDate.Format(domain.DateFormat),
	}
}

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/promotions
// Query params: active (optional: true — только идущие сейчас)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /promotions - Invalid active %q", raw)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		activeOnly = parsed
	}

	list, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /promotions - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := PromotionsResponse{Promotions: make([]PromotionResponse, 0, len(list))}
	for _, p := range list {
		resp.Promotions = append(resp.Promotions, FromDomain(p))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleGet GET /api/promotions/{promotionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	promotionID, err := strconv.ParseInt(mux.Vars(r)["promotionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	promotion, err := h.service.GetByID(r.Context(), promotionID)
	if err != nil {
		switch {
		case errors.Is(err, promotionsService.ErrPromotionNotFound):
			h.logger.Warn("GET /promotions/{id} - Not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /promotions/{id} - Failed: promotion_id=%d, error=%v", promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(promotion))
}
