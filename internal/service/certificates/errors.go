package certificates

import "errors"

var (
	// ErrCertificateNotFound возвращается, когда сертификат не найден
	ErrCertificateNotFound = errors.New("certificates.service: certificate not found")

	// ErrInvalidInput возвращается при некорректных данных сертификата
	ErrInvalidInput = errors.New("certificates.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("certificates.service: internal error")
)
