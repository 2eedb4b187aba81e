package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	// или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidStatus возвращается при неизвестном статусе в фильтре
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
