package reschedule_booking

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
	booking     *domain.Booking
	taken       bool
	excludedID  *int64
	rescheduled bool
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return m.booking, nil
}

func (m *mockBookingRepo) HasActiveAt(_ context.Context, _ int64, _ time.Time, _ types.TimeString, excludeID *int64) (bool, error) {
	m.excludedID = excludeID
	return m.taken, nil
}

func (m *mockBookingRepo) Reschedule(_ context.Context, _ int64, _ time.Time, _ types.TimeString) error {
	m.rescheduled = true
	return nil
}

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          1,
		UserID:      5,
		MasterID:    3,
		BookingDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Status:      domain.StatusConfirmed,
	}
}

func validRequest() Request {
	return Request{
		UserID:    5,
		BookingID: 1,
		Date:      time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		Time:      "15:00",
	}
}

func TestUsecase_Execute_ReschedulesAndResetsStatus(t *testing.T) {
	repo := &mockBookingRepo{booking: confirmedBooking()}
	uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

	booking, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.rescheduled)
	// Подтверждение не переживает перенос
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, types.TimeString("15:00"), booking.BookingTime)
}

func TestUsecase_Execute_ExcludesOwnBookingFromConflictCheck(t *testing.T) {
	repo := &mockBookingRepo{booking: confirmedBooking()}
	uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.excludedID)
	assert.Equal(t, int64(1), *repo.excludedID)
}

func TestUsecase_Execute_SlotTaken(t *testing.T) {
	repo := &mockBookingRepo{booking: confirmedBooking(), taken: true}
	uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.False(t, repo.rescheduled)
}

func TestUsecase_Execute_TerminalStatus(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	repo := &mockBookingRepo{booking: booking}
	uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestUsecase_Execute_NotFound(t *testing.T) {
	t.Run("запись не существует", func(t *testing.T) {
		uc := NewUsecase(&mockBookingRepo{}, mockTxManager{}, fixedTime{testNow}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("чужая запись", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking()}
		uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

		req := validRequest()
		req.UserID = 99

		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUsecase_Execute_PastTime(t *testing.T) {
	repo := &mockBookingRepo{booking: confirmedBooking()}
	uc := NewUsecase(repo, mockTxManager{}, fixedTime{testNow}, nopLogger{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	req.Time = "09:00"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastTime)
}
