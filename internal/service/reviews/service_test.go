package reviews

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
	"github.com/llbeautybar/salon-booking-service/pkg/ptr"
)

type mockRepo struct {
	created *domain.Review
	exists  bool
	sum     int
	count   int

	createErr error
	existsErr error
}

func (m *mockRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *review
	created.ID = 10
	m.created = &created
	return &created, nil
}

func (m *mockRepo) Exists(context.Context, int64, int64, *int64) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockRepo) GetByMaster(context.Context, int64) ([]*domain.Review, error) {
	return nil, nil
}

func (m *mockRepo) SumRatings(context.Context, int64) (int, int, error) {
	return m.sum, m.count, nil
}

type mockMasters struct {
	master *domain.Master

	gotRating float64
	gotCount  int
}

func (m *mockMasters) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	if m.master == nil || m.master.ID != id {
		return nil, masterRepo.ErrMasterNotFound
	}
	return m.master, nil
}

func (m *mockMasters) UpdateRating(_ context.Context, _ int64, rating float64, count int) error {
	m.gotRating = rating
	m.gotCount = count
	return nil
}

type mockBookings struct {
	booking *domain.Booking
}

func (m *mockBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return m.booking, nil
}

type passTxManager struct{}

func (passTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	repo     *mockRepo
	masters  *mockMasters
	bookings *mockBookings
	service  *Service
}

func newFixture() *fixture {
	repo := &mockRepo{sum: 9, count: 2}
	masters := &mockMasters{master: &domain.Master{ID: 5, Name: "Анна"}}
	bookings := &mockBookings{booking: &domain.Booking{
		ID:       77,
		UserID:   42,
		MasterID: 5,
		Status:   domain.StatusCompleted,
	}}

	return &fixture{
		repo:     repo,
		masters:  masters,
		bookings: bookings,
		service:  NewService(repo, masters, bookings, passTxManager{}, nopLogger{}),
	}
}

func validRequest() CreateRequest {
	return CreateRequest{
		UserID:    42,
		MasterID:  5,
		BookingID: ptr.Ptr(int64(77)),
		Rating:    5,
		Comment:   ptr.Ptr("Отличный мастер"),
	}
}

func TestService_Create(t *testing.T) {
	t.Run("отзыв создан и рейтинг пересчитан", func(t *testing.T) {
		f := newFixture()

		review, err := f.service.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(10), review.ID)
		assert.Equal(t, 5, review.Rating)

		// 9 баллов на 2 отзыва
		assert.InDelta(t, 4.5, f.masters.gotRating, 1e-9)
		assert.Equal(t, 2, f.masters.gotCount)
	})

	t.Run("отзыв без привязки к записи", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.BookingID = nil

		_, err := f.service.Create(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("мастер не найден", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.MasterID = 404
		req.BookingID = nil

		_, err := f.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrMasterNotFound)
	})

	t.Run("чужая запись неотличима от несуществующей", func(t *testing.T) {
		f := newFixture()
		f.bookings.booking.UserID = 99

		_, err := f.service.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("запись другого мастера отклоняется", func(t *testing.T) {
		f := newFixture()
		f.bookings.booking.MasterID = 6

		_, err := f.service.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("незавершённая запись", func(t *testing.T) {
		f := newFixture()
		f.bookings.booking.Status = domain.StatusConfirmed

		_, err := f.service.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotCompleted)
	})

	t.Run("повторный отзыв", func(t *testing.T) {
		f := newFixture()
		f.repo.exists = true

		_, err := f.service.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})

	t.Run("валидация", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(*CreateRequest)
		}{
			{"нулевой рейтинг", func(r *CreateRequest) { r.Rating = 0 }},
			{"рейтинг выше максимума", func(r *CreateRequest) { r.Rating = 6 }},
			{"некорректный user id", func(r *CreateRequest) { r.UserID = 0 }},
			{"некорректный master id", func(r *CreateRequest) { r.MasterID = -1 }},
			{"слишком длинный комментарий", func(r *CreateRequest) {
				r.Comment = ptr.Ptr(strings.Repeat("a", domain.MaxCommentLength+1))
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				req := validRequest()
				tt.modify(&req)

				_, err := f.service.Create(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		f := newFixture()
		f.repo.createErr = errors.New("insert failed")

		_, err := f.service.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
