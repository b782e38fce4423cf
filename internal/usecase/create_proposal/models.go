package create_proposal

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

// Financials valores comerciais informados na criação
type Financials struct {
	TotalValue       float64
	DiscountValue    float64
	InstallmentCount int
}

// Request entrada para criação de proposta
type Request struct {
	CompanyID    int64
	ClientID     int64
	BillboardIDs []int64
	SlotIDs      []string
	StartDate    *time.Time
	EndDate      *time.Time
	Financials   Financials
	PaymentTerms *string
}

// Response proposta criada com a contagem de reservas materializadas
type Response struct {
	Proposal        models.ProposalResponse `json:"proposal"`
	BookingsCreated int64                   `json:"bookingsCreated"`
}

func (f Financials) toDomain() domain.Financials {
	return domain.Financials{
		TotalValue:       f.TotalValue,
		DiscountValue:    f.DiscountValue,
		InstallmentCount: f.InstallmentCount,
	}
}
