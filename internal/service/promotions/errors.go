package promotions

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда акция не найдена
	ErrPromotionNotFound = errors.New("promotions.service: promotion not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promotions.service: internal error")
)
