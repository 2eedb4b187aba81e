package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("users.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
