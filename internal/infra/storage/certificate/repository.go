package certificate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var certificateColumns = []string{
	"id",
	"code",
	"amount",
	"category",
	"description",
	"image_url",
	"user_id",
	"purchased_by_user_id",
	"is_used",
	"used_at",
	"expires_at",
	"created_at",
}

// Repository репозиторий подарочных сертификатов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий сертификатов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create выпускает сертификат с уникальным кодом
func (r *Repository) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if c.Code == "" {
		c.Code = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("certificates").
		Columns("code", "amount", "category", "description", "image_url", "user_id", "purchased_by_user_id", "expires_at").
		Values(c.Code, c.Amount, c.Category, c.Description, c.ImageURL, c.UserID, c.PurchasedByUserID, c.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

// GetByIDAndUser получает сертификат, принадлежащий пользователю
func (r *Repository) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Certificate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(certificateColumns...).
		From("certificates").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndUser - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCertificate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCertificateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndUser - scan certificate: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetByUser возвращает сертификаты пользователя,
// опционально фильтруя по признаку использования
func (r *Repository) GetByUser(ctx context.Context, userID int64, isUsed *bool) ([]*domain.Certificate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(certificateColumns...).
		From("certificates").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if isUsed != nil {
		builder = builder.Where(squirrel.Eq{"is_used": *isUsed})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	certificates := make([]*domain.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUser - scan row: %v", ErrScanRow, err)
		}
		certificates = append(certificates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUser - rows error: %v", ErrScanRow, err)
	}

	return certificates, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCertificate(row rowScanner) (*domain.Certificate, error) {
	var c domain.Certificate
	var createdAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Amount,
		&c.Category,
		&c.Description,
		&c.ImageURL,
		&c.UserID,
		&c.PurchasedByUserID,
		&c.IsUsed,
		&c.UsedAt,
		&c.ExpiresAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	return &c, nil
}
