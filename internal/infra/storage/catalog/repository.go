// Package catalog хранилище каталога услуг салона
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var serviceColumns = []string{
	"id",
	"name",
	"category",
	"description",
	"price",
	"duration_minutes",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

// Filter фильтр списка услуг
type Filter struct {
	Category   *string
	OnlyActive bool
}

// Repository репозиторий услуг
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий услуг
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// List возвращает услуги по фильтру
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC")

	if filter.OnlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Categories возвращает список категорий активных услуг
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT category").
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{"category": nil}).
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%w: Categories - scan category: %v", ErrScanRow, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Categories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Description,
		&s.Price,
		&s.DurationMinutes,
		&s.ImageURL,
		&s.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
