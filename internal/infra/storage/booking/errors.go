package booking

import "errors"

var (
	// ErrBookingNotFound retornado quando a reserva não existe
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery retornado ao falhar a montagem da query SQL
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery retornado ao falhar a execução da query SQL
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow retornado ao falhar a leitura do resultado da query
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
