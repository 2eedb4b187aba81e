package reviews

import (
	"errors"
	"net/http"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	reviewsService "github.com/llbeautybar/salon-booking-service/internal/service/reviews"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные отзыва"
	msgMasterNotFound      = "мастер не найден"
	msgBookingNotFound     = "запись не найдена"
	msgBookingNotCompleted = "отзыв можно оставить только по завершённой записи"
	msgAlreadyReviewed     = "вы уже оставили отзыв этому мастеру"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	MasterID  int64   `json:"masterId"`
	BookingID *int64  `json:"bookingId,omitempty"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID        int64   `json:"id"`
	MasterID  int64   `json:"masterId"`
	UserID    int64   `json:"userId"`
	BookingID *int64  `json:"bookingId,omitempty"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		MasterID:  r.MasterID,
		UserID:    r.UserID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), reviewsService.CreateRequest{
		UserID:    user.ID,
		MasterID:  req.MasterID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrMasterNotFound):
			h.logger.Warn("POST /reviews - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, reviewsService.ErrBookingNotFound):
			h.logger.Warn("POST /reviews - Booking not found: user_id=%d", user.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviewsService.ErrBookingNotCompleted):
			h.logger.Warn("POST /reviews - Booking not completed: user_id=%d", user.ID)
			handlers.RespondBadRequest(w, msgBookingNotCompleted)

		case errors.Is(err, reviewsService.ErrAlreadyReviewed):
			h.logger.Warn("POST /reviews - Already reviewed: user_id=%d, master_id=%d", user.ID, req.MasterID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, reviewsService.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reviews - Failed: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%d, master_id=%d, user_id=%d",
		review.ID, req.MasterID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(review))
}
