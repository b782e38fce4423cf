package bookings

import "errors"

var (
	// ErrBookingNotFound retornado quando a reserva não existe
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidRange retornado para intervalo de datas mal formado
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput retornado para entrada inválida
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
