package profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	userRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/user"
	usersService "github.com/llbeautybar/salon-booking-service/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные профиля"
	msgNotFound           = "пользователь не найден"
)

// UpdateProfileRequest HTTP request model; nil-поля не изменяются
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ProfileResponse HTTP response model
type ProfileResponse struct {
	ID         int64   `json:"id"`
	TelegramID int64   `json:"telegramId"`
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(u *domain.User) *ProfileResponse {
	return &ProfileResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomain(user))
}

// HandleUpdate PUT /api/profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), user.ID, userRepo.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid input: user_id=%d, %v", user.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PUT /profile - User not found: user_id=%d", user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /profile - Failed: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
