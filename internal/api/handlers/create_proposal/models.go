package create_proposal

import (
	"fmt"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	createProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_proposal"
)

// FinancialsRequest valores comerciais da proposta
type FinancialsRequest struct {
	TotalValue       float64 `json:"totalValue"`
	DiscountValue    float64 `json:"discountValue"`
	InstallmentCount int     `json:"installmentCount"`
}

// CreateProposalRequest HTTP request model.
// O período vem como slotIds OU como intervalo startDate/endDate.
type CreateProposalRequest struct {
	ClientID     int64             `json:"clientId"`
	BillboardIDs []int64           `json:"billboardIds"`
	SlotIDs      []string          `json:"slotIds,omitempty"`
	StartDate    *string           `json:"startDate,omitempty"` // "2026-03-01"
	EndDate      *string           `json:"endDate,omitempty"`
	Financials   FinancialsRequest `json:"financials"`
	PaymentTerms *string           `json:"paymentTerms,omitempty"`
}

// ToUseCaseRequest converte o HTTP request para o modelo do use case
func (r *CreateProposalRequest) ToUseCaseRequest(companyID int64) (*createProposal.Request, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createProposal.Request{
		CompanyID:    companyID,
		ClientID:     r.ClientID,
		BillboardIDs: r.BillboardIDs,
		SlotIDs:      r.SlotIDs,
		StartDate:    start,
		EndDate:      end,
		Financials: createProposal.Financials{
			TotalValue:       r.Financials.TotalValue,
			DiscountValue:    r.Financials.DiscountValue,
			InstallmentCount: r.Financials.InstallmentCount,
		},
		PaymentTerms: r.PaymentTerms,
	}, nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *raw, err)
	}
	return &t, nil
}
