package domain

import "time"

// BookingStatus status de uma reserva de outdoor
type BookingStatus string

const (
	StatusAtivo      BookingStatus = "ativo"
	StatusFinalizado BookingStatus = "finalizado"
	StatusCancelado  BookingStatus = "cancelado"
)

// BookingOrigin origem da reserva: manual ou materializada por proposta
type BookingOrigin string

const (
	OriginManual   BookingOrigin = "manual"
	OriginProposal BookingOrigin = "proposal"
)

// Booking reserva de um outdoor para um cliente em um período.
// ProposalCode só é preenchido quando Origin == OriginProposal e
// correlaciona a reserva com a proposta que a materializou.
type Booking struct {
	ID          int64
	BillboardID int64
	ClientID    int64
	CompanyID   int64

	PeriodType PeriodType
	StartDate  time.Time
	EndDate    time.Time
	SlotIDs    []string

	Status       BookingStatus
	Origin       BookingOrigin
	ProposalCode *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive somente reservas ativas participam do teste de conflito
func (b *Booking) IsActive() bool {
	return b.Status == StatusAtivo
}

// IsFromProposal indica reserva materializada por uma proposta
func (b *Booking) IsFromProposal() bool {
	return b.Origin == OriginProposal
}

// Period retorna o período canônico da reserva
func (b *Booking) Period() Period {
	return Period{
		Type:      b.PeriodType,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		SlotIDs:   b.SlotIDs,
	}
}

// OverlapsRange teste meio-aberto contra um intervalo arbitrário
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return RangesOverlap(b.StartDate, b.EndDate, start, end)
}

// InactiveBookingStatuses status excluídos da query de sobreposição
var InactiveBookingStatuses = []BookingStatus{
	StatusFinalizado,
	StatusCancelado,
}
