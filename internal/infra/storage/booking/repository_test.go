package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta(
		"INSERT INTO bookings (user_id,service_id,master_id,booking_date,booking_time,status,comment,certificate_id) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at, updated_at",
	)

	t.Run("успешное создание", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(int64(42), int64(1), int64(2), testDate, "10:00", string(domain.StatusPending), nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(100), now, now))

		b := &domain.Booking{
			UserID:      42,
			ServiceID:   1,
			MasterID:    2,
			BookingDate: testDate,
			BookingTime: "10:00",
			Status:      domain.StatusPending,
		}

		created, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, int64(100), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нарушение уникального индекса активных слотов", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(query).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: activeSlotIndex})

		_, err := repo.Create(context.Background(), &domain.Booking{
			UserID:      42,
			ServiceID:   1,
			MasterID:    2,
			BookingDate: testDate,
			BookingTime: "10:00",
			Status:      domain.StatusPending,
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("другое нарушение уникальности не маскируется", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(query).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "some_other_index"})

		_, err := repo.Create(context.Background(), &domain.Booking{
			UserID:      42,
			ServiceID:   1,
			MasterID:    2,
			BookingDate: testDate,
			BookingTime: "10:00",
			Status:      domain.StatusPending,
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSlotTaken)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_GetByID(t *testing.T) {
	query := regexp.QuoteMeta(
		"SELECT id, user_id, service_id, master_id, booking_date, booking_time, status, comment, certificate_id, created_at, updated_at " +
			"FROM bookings WHERE id = $1",
	)

	t.Run("запись найдена", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Now()
		rows := sqlmock.NewRows(bookingColumns).
			AddRow(int64(7), int64(42), int64(1), int64(2), testDate, "10:00", "confirmed", nil, nil, now, now)

		mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(rows)

		b, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
		assert.Equal(t, int64(42), b.UserID)
		assert.Equal(t, types.TimeString("10:00"), b.BookingTime)
		assert.Equal(t, domain.StatusConfirmed, b.Status)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(query).WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_GetOccupiedTimes(t *testing.T) {
	repo, mock := newMock(t)

	query := regexp.QuoteMeta(
		"SELECT booking_time FROM bookings " +
			"WHERE booking_date = $1 AND master_id = $2 AND status IN ($3,$4) " +
			"ORDER BY booking_time ASC",
	)

	rows := sqlmock.NewRows([]string{"booking_time"}).
		AddRow("09:30").
		AddRow("14:00")

	mock.ExpectQuery(query).
		WithArgs(testDate, int64(2), string(domain.StatusPending), string(domain.StatusConfirmed)).
		WillReturnRows(rows)

	times, err := repo.GetOccupiedTimes(context.Background(), 2, testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:30", "14:00"}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasActiveAt(t *testing.T) {
	baseQuery := "SELECT id FROM bookings " +
		"WHERE booking_date = $1 AND booking_time = $2 AND master_id = $3 AND status IN ($4,$5)"

	t.Run("слот занят", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(baseQuery + " LIMIT 1")).
			WithArgs(testDate, "10:00", int64(2), string(domain.StatusPending), string(domain.StatusConfirmed)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		taken, err := repo.HasActiveAt(context.Background(), 2, testDate, "10:00", nil)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("слот свободен", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(baseQuery + " LIMIT 1")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		taken, err := repo.HasActiveAt(context.Background(), 2, testDate, "10:00", nil)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("собственная запись исключается при переносе", func(t *testing.T) {
		repo, mock := newMock(t)

		query := regexp.QuoteMeta(baseQuery + " AND id <> $6 LIMIT 1")
		mock.ExpectQuery(query).
			WithArgs(testDate, "10:00", int64(2), string(domain.StatusPending), string(domain.StatusConfirmed), int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		excludeID := int64(7)
		taken, err := repo.HasActiveAt(context.Background(), 2, testDate, "10:00", &excludeID)
		require.NoError(t, err)
		assert.False(t, taken)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Reschedule(t *testing.T) {
	query := regexp.QuoteMeta(
		"UPDATE bookings SET booking_date = $1, booking_time = $2, status = $3, updated_at = NOW() WHERE id = $4",
	)

	t.Run("перенос сбрасывает статус в pending", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(query).
			WithArgs(testDate, "15:00", string(domain.StatusPending), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Reschedule(context.Background(), 7, testDate, "15:00")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(query).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Reschedule(context.Background(), 404, testDate, "15:00")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("занятый слот транслируется в ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(query).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: activeSlotIndex})

		err := repo.Reschedule(context.Background(), 7, testDate, "15:00")
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	query := regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2",
	)

	t.Run("статус обновлён", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(query).
			WithArgs(string(domain.StatusCancelled), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 7, domain.StatusCancelled)
		require.NoError(t, err)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(query).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 404, domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
