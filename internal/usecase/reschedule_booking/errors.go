package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда запись не найдена
	// или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrInvalidState возвращается при попытке перенести завершённую
	// или отменённую запись
	ErrInvalidState = errors.New("reschedule_booking: booking is already finished")

	// ErrSlotTaken возвращается, когда новый слот уже занят
	ErrSlotTaken = errors.New("reschedule_booking: slot already taken")

	// ErrPastTime возвращается при попытке перенести запись на прошедшее время
	ErrPastTime = errors.New("reschedule_booking: new booking time is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
