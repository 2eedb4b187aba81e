package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	createBooking "github.com/llbeautybar/salon-booking-service/internal/usecase/create_booking"
)

type mockUseCase struct {
	booking *domain.Booking
	err     error
	gotReq  createBooking.Request
}

func (m *mockUseCase) Execute(_ context.Context, req createBooking.Request) (*domain.Booking, error) {
	m.gotReq = req
	return m.booking, m.err
}

type stubUserProvider struct{}

func (stubUserProvider) GetOrCreateByTelegramID(context.Context, int64, *string, *string) (*domain.User, error) {
	return &domain.User{ID: 42, TelegramID: 100500}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// serve прогоняет запрос через auth middleware и handler,
// как это происходит в реальном роутере
func serve(t *testing.T, useCase *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	wrapped := middleware.Auth(stubUserProvider{}, nopLogger{})(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("X-Telegram-User-Id", "100500")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	validBody := `{"serviceId": 1, "masterId": 2, "bookingDate": "2025-06-02", "bookingTime": "10:00"}`

	t.Run("успешное создание 201", func(t *testing.T) {
		useCase := &mockUseCase{booking: &domain.Booking{
			ID:          100,
			UserID:      42,
			ServiceID:   1,
			MasterID:    2,
			BookingDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			BookingTime: "10:00",
			Status:      domain.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}}

		rec := serve(t, useCase, validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(42), useCase.gotReq.UserID)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "2025-06-02", resp.BookingDate)
		assert.Equal(t, "10:00", resp.BookingTime)
	})

	t.Run("занятый слот 409", func(t *testing.T) {
		rec := serve(t, &mockUseCase{err: createBooking.ErrSlotTaken}, validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "занято")
	})

	t.Run("услуга не найдена 404", func(t *testing.T) {
		rec := serve(t, &mockUseCase{err: createBooking.ErrServiceNotFound}, validBody)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("мастер не оказывает услугу 400", func(t *testing.T) {
		rec := serve(t, &mockUseCase{err: createBooking.ErrMasterServiceMismatch}, validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("прошедшее время 400", func(t *testing.T) {
		rec := serve(t, &mockUseCase{err: createBooking.ErrPastTime}, validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("некорректная дата 400 без вызова usecase", func(t *testing.T) {
		useCase := &mockUseCase{}
		rec := serve(t, useCase, `{"serviceId": 1, "masterId": 2, "bookingDate": "02.06.2025", "bookingTime": "10:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, useCase.gotReq.ServiceID)
	})

	t.Run("битый JSON 400", func(t *testing.T) {
		rec := serve(t, &mockUseCase{}, `{"serviceId": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("неизвестное поле отклоняется", func(t *testing.T) {
		rec := serve(t, &mockUseCase{}, `{"serviceId": 1, "masterId": 2, "bookingDate": "2025-06-02", "bookingTime": "10:00", "isAdmin": true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("внутренняя ошибка 500", func(t *testing.T) {
		rec := serve(t, &mockUseCase{err: createBooking.ErrInternal}, validBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
