package promotions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

type mockService struct {
	promotions []*domain.Promotion
	err        error

	gotActiveOnly bool
	listCalled    bool
}

func (m *mockService) GetByID(context.Context, int64) (*domain.Promotion, error) {
	return nil, m.err
}

func (m *mockService) List(_ context.Context, activeOnly bool) ([]*domain.Promotion, error) {
	m.listCalled = true
	m.gotActiveOnly = activeOnly
	return m.promotions, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_HandleList(t *testing.T) {
	promo := &domain.Promotion{
		ID:              1,
		Title:           "Скидка на маникюр",
		DiscountPercent: 20,
		StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	t.Run("список без фильтра", func(t *testing.T) {
		service := &mockService{promotions: []*domain.Promotion{promo}}
		rec := httptest.NewRecorder()

		NewHandler(service, nopLogger{}).HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/promotions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, service.gotActiveOnly)

		var resp PromotionsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Promotions, 1)
		assert.Equal(t, "2025-06-01", resp.Promotions[0].StartDate)
	})

	t.Run("active=true передаётся в сервис", func(t *testing.T) {
		service := &mockService{}
		rec := httptest.NewRecorder()

		NewHandler(service, nopLogger{}).HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/promotions?active=true", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, service.gotActiveOnly)
	})

	t.Run("некорректный active даёт 400 без вызова сервиса", func(t *testing.T) {
		service := &mockService{}
		rec := httptest.NewRecorder()

		NewHandler(service, nopLogger{}).HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/promotions?active=maybe", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, service.listCalled)
	})
}
