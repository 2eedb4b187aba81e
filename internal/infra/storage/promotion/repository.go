package promotion

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var promotionColumns = []string{
	"id",
	"title",
	"description",
	"discount_percent",
	"image_url",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
}

// Repository репозиторий акций
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий акций
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает акцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPromotion(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan promotion: %v", ErrScanRow, err)
	}

	return p, nil
}

// List возвращает акции; activeOnly оставляет только идущие в момент now
func (r *Repository) List(ctx context.Context, activeOnly bool, now time.Time) ([]*domain.Promotion, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		OrderBy("start_date DESC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true}).
			Where(squirrel.LtOrEq{"start_date": now}).
			Where(squirrel.GtOrEq{"end_date": now})
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

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		promotions = append(promotions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var p domain.Promotion
	var createdAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.DiscountPercent,
		&p.ImageURL,
		&p.StartDate,
		&p.EndDate,
		&p.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	return &p, nil
}
