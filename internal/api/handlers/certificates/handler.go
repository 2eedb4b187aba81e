package certificates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	certificatesService "github.com/llbeautybar/salon-booking-service/internal/service/certificates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сертификата"
	msgInvalidIsUsed      = "некорректное значение isUsed, ожидается true или false"
)

// PurchaseCertificateRequest HTTP request model
type PurchaseCertificateRequest struct {
	Amount          float64 `json:"amount"`
	Category        *string `json:"category,omitempty"`
	Description     *string `json:"description,omitempty"`
	RecipientUserID *int64  `json:"recipientUserId,omitempty"`
}

// CertificateResponse HTTP response model
type CertificateResponse struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Amount      float64 `json:"amount"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsUsed      bool    `json:"isUsed"`
	ExpiresAt   *string `json:"expiresAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// CertificatesResponse HTTP-модель списка сертификатов
type CertificatesResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(c *domain.Certificate) CertificateResponse {
	resp := CertificateResponse{
		ID:          c.ID,
		Code:        c.Code,
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		IsUsed:      c.IsUsed,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.ExpiresAt != nil {
		expires := c.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}

type Handler struct {
	service CertificateService
	logger  Logger
}

func NewHandler(service CertificateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandlePurchase POST /api/certificates
func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req PurchaseCertificateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /certificates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cert, err := h.service.Purchase(r.Context(), certificatesService.PurchaseRequest{
		BuyerUserID:     user.ID,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		RecipientUserID: req.RecipientUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, certificatesService.ErrInvalidInput):
			h.logger.Warn("POST /certificates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /certificates - Failed: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /certificates - Certificate purchased: certificate_id=%d, user_id=%d", cert.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(cert))
}

// HandleList GET /api/certificates
// Query params: isUsed (optional: true|false)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var isUsed *bool
	if raw := r.URL.Query().Get("isUsed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /certificates - Invalid isUsed %q", raw)
			handlers.RespondBadRequest(w, msgInvalidIsUsed)
			return
		}
		isUsed = &parsed
	}

	list, err := h.service.GetUserCertificates(r.Context(), user.ID, isUsed)
	if err != nil {
		h.logger.Error("GET /certificates - Failed: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := CertificatesResponse{Certificates: make([]CertificateResponse, 0, len(list))}
	for _, c := range list {
		resp.Certificates = append(resp.Certificates, FromDomain(c))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
