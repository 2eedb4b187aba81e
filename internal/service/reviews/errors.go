package reviews

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных отзыва
	ErrInvalidInput = errors.New("reviews.service: invalid input data")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("reviews.service: master not found")

	// ErrBookingNotFound возвращается, когда указанная запись не найдена
	// или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("reviews.service: booking not found")

	// ErrBookingNotCompleted возвращается, когда отзыв привязан
	// к незавершённой записи
	ErrBookingNotCompleted = errors.New("reviews.service: booking is not completed")

	// ErrAlreadyReviewed возвращается при повторном отзыве
	// на того же мастера
	ErrAlreadyReviewed = errors.New("reviews.service: review already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews.service: internal error")
)
