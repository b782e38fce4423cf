package create_booking

import (
	"errors"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

var (
	// ErrInvalidInput retornado para entrada inválida
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrClientNotFound retornado quando o cliente não pertence à empresa
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrBillboardNotFound retornado quando o outdoor não pertence à empresa
	ErrBillboardNotFound = errors.New("create_booking: billboard not found")

	// ErrSlotNotFound retornado quando algum slot selecionado não existe
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrInvalidPeriod retornado para período mal formado
	ErrInvalidPeriod = errors.New("create_booking: invalid period")

	// ErrBookingConflict retornado quando o período sobrepõe reservas ativas
	ErrBookingConflict = errors.New("create_booking: billboard already booked for this period")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError erro de sobreposição carregando as reservas conflitantes.
// Desembrulha para ErrBookingConflict, então os handlers seguem usando
// errors.Is e recuperam a lista com errors.As.
type ConflictError struct {
	Conflicts []*domain.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v (%d conflicting bookings)", ErrBookingConflict, len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
