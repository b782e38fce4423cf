package create_booking

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings/models"
)

// Request entrada para criação de reserva manual.
// O período vem como seleção de slots quinzenais OU intervalo livre.
type Request struct {
	BillboardID int64
	ClientID    int64
	CompanyID   int64
	SlotIDs     []string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Response reserva criada
type Response = models.BookingResponse

// fromDomain converte a reserva criada em resposta
func fromDomain(b *domain.Booking) *Response {
	return models.FromDomainBooking(b)
}
