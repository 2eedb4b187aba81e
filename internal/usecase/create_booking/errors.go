package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrMasterNotFound возвращается, когда мастер не найден или неактивен
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrMasterServiceMismatch возвращается, когда мастер не оказывает услугу
	ErrMasterServiceMismatch = errors.New("create_booking: master does not provide this service")

	// ErrCertificateInvalid возвращается, когда сертификат не найден,
	// уже использован или просрочен
	ErrCertificateInvalid = errors.New("create_booking: certificate is not applicable")

	// ErrSlotTaken возвращается, когда у мастера уже есть активная запись
	// на это время
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrPastTime возвращается при попытке записаться на прошедшее время
	ErrPastTime = errors.New("create_booking: booking time is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
