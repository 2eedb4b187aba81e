package get_available_slots

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги —
	// это нарушение контракта со стороны вызывающего, а не деградация
	ErrInvalidDuration = errors.New("get_available_slots: service duration must be positive")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("get_available_slots: master not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
