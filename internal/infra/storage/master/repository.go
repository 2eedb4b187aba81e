package master

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var masterColumns = []string{
	"id",
	"name",
	"specialization",
	"phone",
	"telegram_id",
	"photo_url",
	"work_schedule",
	"rating",
	"reviews_count",
	"is_active",
	"created_at",
	"updated_at",
}

// Filter фильтр списка мастеров
type Filter struct {
	ServiceID  *int64 // только мастера, оказывающие услугу
	OnlyActive bool
}

// Repository репозиторий мастеров
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий мастеров
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMaster(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan master: %v", ErrScanRow, err)
	}

	return m, nil
}

// List возвращает мастеров по фильтру.
// Привязка мастеров к услугам живёт в таблице master_services.
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Master, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(prefixColumns("m", masterColumns)...).
		From("masters m").
		OrderBy("m.id ASC")

	if filter.OnlyActive {
		builder = builder.Where(squirrel.Eq{"m.is_active": true})
	}
	if filter.ServiceID != nil {
		builder = builder.
			Join("master_services ms ON ms.master_id = m.id").
			Where(squirrel.Eq{"ms.service_id": *filter.ServiceID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		masters = append(masters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return masters, nil
}

// ProvidesService проверяет, что мастер оказывает услугу
func (r *Repository) ProvidesService(ctx context.Context, masterID, serviceID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("master_services").
		Where(squirrel.Eq{"master_id": masterID, "service_id": serviceID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ProvidesService - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ProvidesService - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateRating обновляет агрегированный рейтинг мастера.
// Вызывается в одной транзакции с созданием отзыва.
func (r *Repository) UpdateRating(ctx context.Context, masterID int64, rating float64, reviewsCount int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("masters").
		Set("rating", rating).
		Set("reviews_count", reviewsCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": masterID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrMasterNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMaster(row rowScanner) (*domain.Master, error) {
	var m domain.Master
	var rating sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Specialization,
		&m.Phone,
		&m.TelegramID,
		&m.PhotoURL,
		&m.WorkSchedule,
		&rating,
		&m.ReviewsCount,
		&m.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Rating = rating.Float64
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time
	return &m, nil
}

func prefixColumns(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}
