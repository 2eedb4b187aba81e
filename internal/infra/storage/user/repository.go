package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/psqlbuilder"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
)

var userColumns = []string{
	"id",
	"telegram_id",
	"first_name",
	"last_name",
	"phone",
	"email",
	"is_admin",
	"created_at",
	"updated_at",
}

// ProfileUpdate изменяемые поля профиля; nil — поле не меняется
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
}

// Repository репозиторий пользователей
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает репозиторий пользователей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - build select query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - scan user: %v", ErrScanRow, err)
	}

	return u, nil
}

// Create создает пользователя. При гонке за telegram_id вставка
// не падает, а возвращает уже существующую строку (ON CONFLICT DO NOTHING
// плюс повторное чтение на стороне вызывающего).
func (r *Repository) Create(ctx context.Context, telegramID int64, firstName, lastName *string) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("telegram_id", "first_name", "last_name", "is_admin").
		Values(telegramID, firstName, lastName, false).
		Suffix("ON CONFLICT (telegram_id) DO NOTHING RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Конкурирующая вставка успела раньше — читаем её результат
		return r.GetByTelegramID(ctx, telegramID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// UpdateProfile обновляет заполненные поля профиля и возвращает пользователя
func (r *Repository) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns))

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	return u, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.TelegramID,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.Email,
		&u.IsAdmin,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time
	return &u, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
