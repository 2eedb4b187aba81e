package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var reviewColumns = []string{
	"id",
	"master_id",
	"user_id",
	"booking_id",
	"rating",
	"comment",
	"created_at",
	"updated_at",
}

// Repository репозиторий отзывов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий отзывов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("master_id", "user_id", "booking_id", "rating", "comment").
		Values(review.MasterID, review.UserID, review.BookingID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time
	review.UpdatedAt = updatedAt.Time
	return review, nil
}

// Exists проверяет наличие отзыва пользователя о мастере для записи
func (r *Repository) Exists(ctx context.Context, userID, masterID int64, bookingID *int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reviews").
		Where(squirrel.Eq{
			"user_id":    userID,
			"master_id":  masterID,
			"booking_id": bookingID,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// GetByMaster возвращает отзывы о мастере, свежие первыми
func (r *Repository) GetByMaster(ctx context.Context, masterID int64) ([]*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"master_id": masterID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMaster - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMaster - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.MasterID,
			&review.UserID,
			&review.BookingID,
			&review.Rating,
			&review.Comment,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByMaster - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		review.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByMaster - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// SumRatings возвращает сумму и количество оценок мастера.
// Используется для пересчёта агрегированного рейтинга в транзакции
// создания отзыва.
func (r *Repository) SumRatings(ctx context.Context, masterID int64) (sum int, count int, err error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"master_id": masterID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: SumRatings - build select query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: SumRatings - execute query: %v", ErrExecQuery, err)
	}

	return sum, count, nil
}
