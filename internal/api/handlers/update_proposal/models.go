package update_proposal

import (
	"fmt"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	updateProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/update_proposal"
)

// FinancialsRequest valores comerciais para substituição integral
type FinancialsRequest struct {
	TotalValue       float64 `json:"totalValue"`
	DiscountValue    float64 `json:"discountValue"`
	InstallmentCount int     `json:"installmentCount"`
}

// UpdateProposalRequest HTTP request model: patch parcial, campos omitidos
// não são alterados
type UpdateProposalRequest struct {
	ClientID     *int64             `json:"clientId,omitempty"`
	BillboardIDs []int64            `json:"billboardIds,omitempty"`
	SlotIDs      []string           `json:"slotIds,omitempty"`
	StartDate    *string            `json:"startDate,omitempty"` // "2026-03-01"
	EndDate      *string            `json:"endDate,omitempty"`
	Financials   *FinancialsRequest `json:"financials,omitempty"`
	PaymentTerms *string            `json:"paymentTerms,omitempty"`
}

// ToUseCaseRequest converte o HTTP request para o modelo do use case
func (r *UpdateProposalRequest) ToUseCaseRequest(proposalID, companyID int64) (*updateProposal.Request, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &updateProposal.Request{
		ProposalID:   proposalID,
		CompanyID:    companyID,
		ClientID:     r.ClientID,
		BillboardIDs: r.BillboardIDs,
		SlotIDs:      r.SlotIDs,
		StartDate:    start,
		EndDate:      end,
		PaymentTerms: r.PaymentTerms,
	}
	if r.Financials != nil {
		req.Financials = &updateProposal.Financials{
			TotalValue:       r.Financials.TotalValue,
			DiscountValue:    r.Financials.DiscountValue,
			InstallmentCount: r.Financials.InstallmentCount,
		}
	}
	return req, nil
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
