package notifier

import "time"

// Tipos de evento emitidos pelo motor de reservas
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventProposalCreated  = "proposal.created"
	EventProposalUpdated  = "proposal.updated"
	EventProposalDeleted  = "proposal.deleted"
)

// Event intenção de notificação enfileirada após uma mutação.
// O despacho é fire-and-forget: falha de entrega nunca chega ao chamador.
type Event struct {
	CompanyID  int64                  `json:"companyId"`
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurredAt"`
}
