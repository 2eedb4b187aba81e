package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	userRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/user"
)

// Service пользователи мини-приложения
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает сервис пользователей
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetOrCreateByTelegramID возвращает пользователя по Telegram ID,
// создавая его при первом обращении. Вставка идемпотентна:
// параллельные первые запросы одного пользователя не конфликтуют.
func (s *Service) GetOrCreateByTelegramID(ctx context.Context, telegramID int64, firstName, lastName *string) (*domain.User, error) {
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Users: failed to get user by telegram id %d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}

	user, err = s.repo.Create(ctx, telegramID, firstName, lastName)
	if err != nil {
		s.logger.Error("Users: failed to create user with telegram id %d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: create user: %v", ErrInternal, err)
	}

	s.logger.Info("Users: created user %d for telegram id %d", user.ID, telegramID)
	return user, nil
}

// UpdateProfile обновляет заполненные поля профиля
func (s *Service) UpdateProfile(ctx context.Context, userID int64, update userRepo.ProfileUpdate) (*domain.User, error) {
	if update.Phone != nil && !validPhone(*update.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}
	if update.Email != nil && !strings.Contains(*update.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Users: failed to update profile of user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: update profile: %v", ErrInternal, err)
	}
	return user, nil
}

// validPhone принимает номера в свободном формате: цифры,
// необязательный ведущий плюс, пробелы, скобки и дефисы
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '(' || r == ')' || r == '-':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}
