package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

const (
	uniqueViolation = "23505"

	// Имя частичного уникального индекса по активным записям.
	// Индекс — последний рубеж против двойного бронирования,
	// даже если приложение проверку пропустит.
	activeSlotIndex = "uq_bookings_active_slot"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"service_id",
	"master_id",
	"booking_date",
	"booking_time",
	"status",
	"comment",
	"certificate_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий записей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись. Нарушение уникального индекса активных слотов
// транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "service_id", "master_id", "booking_date", "booking_time", "status", "comment", "certificate_id").
		Values(b.UserID, b.ServiceID, b.MasterID, b.BookingDate, b.BookingTime, b.Status, b.Comment, b.CertificateID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: перенос записи читает и меняет её
	if txmanager.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByUserID получает историю записей пользователя,
// опционально фильтруя по статусу. Свежие записи первыми.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, booking_time DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOccupiedTimes возвращает времена активных записей мастера на дату.
// Это множество занятых слотов для генератора доступности.
func (r *Repository) GetOccupiedTimes(ctx context.Context, masterID int64, date time.Time) ([]types.TimeString, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_time").
		From("bookings").
		Where(squirrel.Eq{
			"master_id":    masterID,
			"booking_date": date,
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		OrderBy("booking_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedTimes - scan booking_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// GetActiveByDate возвращает все активные записи на дату (по всем мастерам)
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		OrderBy("booking_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// HasActiveAt проверяет наличие активной записи на (мастер, дата, время).
// excludeID исключает собственную запись при переносе.
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) HasActiveAt(ctx context.Context, masterID int64, date time.Time, bookingTime types.TimeString, excludeID *int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"master_id":    masterID,
			"booking_date": date,
			"booking_time": bookingTime,
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		Limit(1)

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	if txmanager.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Reschedule переносит запись на новые дату и время.
// Статус сбрасывается в pending: перенесённая запись заново проходит
// подтверждение администратором.
func (r *Repository) Reschedule(ctx context.Context, id int64, date time.Time, bookingTime types.TimeString) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", date).
		Set("booking_time", bookingTime).
		Set("status", domain.StatusPending).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveSlotViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&b.MasterID,
		&b.BookingDate,
		&b.BookingTime,
		&b.Status,
		&b.Comment,
		&b.CertificateID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation && pqErr.Constraint == activeSlotIndex
	}
	return false
}
