package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

type mockBookingRepo struct {
	booking       *domain.Booking
	updatedStatus *domain.BookingStatus
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return m.booking, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	m.updatedStatus = &status
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func pendingBooking(date time.Time, bookingTime types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          1,
		UserID:      5,
		BookingDate: date,
		BookingTime: bookingTime,
		Status:      domain.StatusPending,
	}
}

func TestUsecase_Execute_CancelsBooking(t *testing.T) {
	repo := &mockBookingRepo{
		// Больше суток до начала
		booking: pendingBooking(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), "10:00"),
	}
	uc := NewUsecase(repo, fixedTime{testNow}, nopLogger{})

	booking, err := uc.Execute(context.Background(), Request{UserID: 5, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, booking.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
}

func TestUsecase_Execute_CancellationWindow(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		bookingTime types.TimeString
		wantErr     error
	}{
		{
			// testNow 2025-06-02 12:00, начало 2025-06-03 11:59 — осталось 23ч59м
			name:        "меньше суток до начала",
			date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			bookingTime: "11:59",
			wantErr:     ErrCancellationWindow,
		},
		{
			// Начало 2025-06-03 12:01 — осталось 24ч01м
			name:        "чуть больше суток до начала",
			date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			bookingTime: "12:01",
		},
		{
			name:        "запись уже началась",
			date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			bookingTime: "10:00",
			wantErr:     ErrCancellationWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{booking: pendingBooking(tt.date, tt.bookingTime)}
			uc := NewUsecase(repo, fixedTime{testNow}, nopLogger{})

			_, err := uc.Execute(context.Background(), Request{UserID: 5, BookingID: 1})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.updatedStatus)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUsecase_Execute_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			booking := pendingBooking(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")
			booking.Status = status
			repo := &mockBookingRepo{booking: booking}
			uc := NewUsecase(repo, fixedTime{testNow}, nopLogger{})

			_, err := uc.Execute(context.Background(), Request{UserID: 5, BookingID: 1})
			require.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestUsecase_Execute_NotFound(t *testing.T) {
	t.Run("запись не существует", func(t *testing.T) {
		uc := NewUsecase(&mockBookingRepo{}, fixedTime{testNow}, nopLogger{})

		_, err := uc.Execute(context.Background(), Request{UserID: 5, BookingID: 1})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("чужая запись", func(t *testing.T) {
		repo := &mockBookingRepo{
			booking: pendingBooking(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00"),
		}
		uc := NewUsecase(repo, fixedTime{testNow}, nopLogger{})

		_, err := uc.Execute(context.Background(), Request{UserID: 99, BookingID: 1})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}
