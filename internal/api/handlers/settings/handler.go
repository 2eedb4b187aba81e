package settings

import (
	"net/http"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// SettingsResponse HTTP-модель настроек салона
type SettingsResponse struct {
	WorkingHours      *string `json:"workingHours,omitempty"`
	Address           *string `json:"address,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Email             *string `json:"email,omitempty"`
	SocialLinks       *string `json:"socialLinks,omitempty"`
	MapCoordinates    *string `json:"mapCoordinates,omitempty"`
	PrivacyPolicyText *string `json:"privacyPolicyText,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.SalonSettings) *SettingsResponse {
	return &SettingsResponse{
		WorkingHours:      s.WorkingHours,
		Address:           s.Address,
		Phone:             s.Phone,
		Email:             s.Email,
		SocialLinks:       s.SocialLinks,
		MapCoordinates:    s.MapCoordinates,
		PrivacyPolicyText: s.PrivacyPolicyText,
	}
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomain(s))
}
