package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var settingsColumns = []string{
	"id",
	"working_hours",
	"address",
	"phone",
	"email",
	"social_links",
	"map_coordinates",
	"privacy_policy_text",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек салона (единственная строка)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий настроек
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки салона
func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("salon_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

// CreateDefault создает пустую строку настроек
func (r *Repository) CreateDefault(ctx context.Context) (*domain.SalonSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query := "INSERT INTO salon_settings DEFAULT VALUES RETURNING " + columnsList()

	s, err := scanSettings(executor.QueryRowContext(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDefault - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.SalonSettings, error) {
	var s domain.SalonSettings
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.WorkingHours,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.SocialLinks,
		&s.MapCoordinates,
		&s.PrivacyPolicyText,
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

func columnsList() string {
	out := ""
	for i, c := range settingsColumns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
