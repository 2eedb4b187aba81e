package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Заголовки, которые проставляет Telegram Mini App фронтенд
const (
	headerTelegramUserID    = "X-Telegram-User-Id"
	headerTelegramFirstName = "X-Telegram-First-Name"
	headerTelegramLastName  = "X-Telegram-Last-Name"
)

type userContextKey struct{}

// UserProvider интерфейс получения пользователя по Telegram ID
type UserProvider interface {
	GetOrCreateByTelegramID(ctx context.Context, telegramID int64, firstName, lastName *string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth аутентифицирует запрос по заголовку X-Telegram-User-Id.
// Пользователь создается при первом обращении: у мини-приложения
// нет отдельной регистрации.
func Auth(users UserProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(headerTelegramUserID)
			if rawID == "" {
				handlers.RespondUnauthorized(w)
				return
			}

			telegramID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || telegramID <= 0 {
				logger.Warn("Auth: invalid telegram user id %q", rawID)
				handlers.RespondUnauthorized(w)
				return
			}

			user, err := users.GetOrCreateByTelegramID(
				r.Context(),
				telegramID,
				headerValue(r, headerTelegramFirstName),
				headerValue(r, headerTelegramLastName),
			)
			if err != nil {
				logger.Error("Auth: failed to resolve user with telegram id %d: %v", telegramID, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает аутентифицированного пользователя запроса
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*domain.User)
	return user, ok
}

func headerValue(r *http.Request, name string) *string {
	v := r.Header.Get(name)
	if v == "" {
		return nil
	}
	return &v
}
