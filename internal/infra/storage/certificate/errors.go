package certificate

import "errors"

var (
	// ErrCertificateNotFound возвращается, когда сертификат не найден
	ErrCertificateNotFound = errors.New("certificate.repository: certificate not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("certificate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("certificate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("certificate.repository: failed to scan row")
)
