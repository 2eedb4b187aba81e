package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда запись не найдена
	// или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrInvalidState возвращается при попытке отменить завершённую
	// или уже отменённую запись
	ErrInvalidState = errors.New("cancel_booking: booking is already finished")

	// ErrCancellationWindow возвращается, когда до начала записи
	// осталось меньше суток
	ErrCancellationWindow = errors.New("cancel_booking: cancellation window has closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
