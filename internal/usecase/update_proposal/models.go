package update_proposal

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

// Financials valores comerciais para substituição integral
type Financials struct {
	TotalValue       float64
	DiscountValue    float64
	InstallmentCount int
}

// Request patch parcial da proposta: campos nil (ou vazios, no caso das
// listas) ficam como estão. Somente os campos abaixo são mutáveis; tudo
// o mais da proposta, em especial o código, é imutável.
type Request struct {
	ProposalID int64
	CompanyID  int64

	ClientID     *int64
	BillboardIDs []int64
	SlotIDs      []string
	StartDate    *time.Time
	EndDate      *time.Time
	Financials   *Financials
	PaymentTerms *string
}

// Response proposta atualizada com o saldo de reservas do ajuste
type Response struct {
	Proposal        models.ProposalResponse `json:"proposal"`
	BookingsAdded   int64                   `json:"bookingsAdded"`
	BookingsRemoved int64                   `json:"bookingsRemoved"`
}

func (f Financials) toDomain() domain.Financials {
	return domain.Financials{
		TotalValue:       f.TotalValue,
		DiscountValue:    f.DiscountValue,
		InstallmentCount: f.InstallmentCount,
	}
}

// hasPeriodChange indica se o patch inclui troca de período
func (r *Request) hasPeriodChange() bool {
	return len(r.SlotIDs) > 0 || r.StartDate != nil || r.EndDate != nil
}

// hasBillboardChange indica se o patch inclui troca do pacote de outdoors
func (r *Request) hasBillboardChange() bool {
	return r.BillboardIDs != nil
}
