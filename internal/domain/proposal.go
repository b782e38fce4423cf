package domain

import "time"

// ProposalStatus status de uma proposta comercial
type ProposalStatus string

const (
	ProposalEmAndamento ProposalStatus = "em_andamento"
	ProposalConcluida   ProposalStatus = "concluida"
	ProposalVencida     ProposalStatus = "vencida"
)

// Financials valores comerciais da proposta.
// O motor só persiste e repassa; cobrança fica fora deste serviço.
type Financials struct {
	TotalValue       float64
	DiscountValue    float64
	InstallmentCount int
}

// Proposal proposta comercial: um pacote de outdoors sob um único período.
// Code é gerado uma única vez na criação e nunca regenerado; é a chave de
// correlação com as reservas materializadas (sem foreign key no banco,
// a consistência é garantida pela varredura de reconciliação).
type Proposal struct {
	ID        int64
	CompanyID int64
	ClientID  int64
	Code      string

	PeriodType PeriodType
	StartDate  time.Time
	EndDate    time.Time
	SlotIDs    []string

	BillboardIDs []int64
	Status       ProposalStatus

	Financials   Financials
	PaymentTerms *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period retorna o período canônico da proposta
func (p *Proposal) Period() Period {
	return Period{
		Type:      p.PeriodType,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		SlotIDs:   p.SlotIDs,
	}
}

// CanBeUpdated apenas propostas em andamento são mutáveis;
// concluida e vencida são estados terminais para este motor.
func (p *Proposal) CanBeUpdated() bool {
	return p.Status == ProposalEmAndamento
}

// IsExpired proposta em andamento cujo período já terminou
func (p *Proposal) IsExpired(now time.Time) bool {
	return p.Status == ProposalEmAndamento && p.EndDate.Before(now)
}

// HasBillboard verifica se o outdoor faz parte do pacote
func (p *Proposal) HasBillboard(billboardID int64) bool {
	for _, id := range p.BillboardIDs {
		if id == billboardID {
			return true
		}
	}
	return false
}

// ReconcilableStatuses propostas cujas reservas a varredura mantém
// consistentes. Propostas vencidas ficam de fora: suas reservas não são
// recriadas nem corrigidas.
var ReconcilableStatuses = []ProposalStatus{
	ProposalEmAndamento,
	ProposalConcluida,
}
