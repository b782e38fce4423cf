package update_proposal

import (
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// validateRequest valida a forma do patch antes de qualquer I/O
func validateRequest(req *Request) error {
	if req.ProposalID <= 0 {
		return fmt.Errorf("%w: proposalId must be positive", ErrInvalidInput)
	}
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}

	if req.ClientID == nil && !req.hasBillboardChange() && !req.hasPeriodChange() &&
		req.Financials == nil && req.PaymentTerms == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.hasBillboardChange() {
		if len(req.BillboardIDs) < domain.MinProposalBillboards {
			return fmt.Errorf("%w: at least one billboard is required", ErrInvalidInput)
		}
		if len(req.BillboardIDs) > domain.MaxProposalBillboards {
			return fmt.Errorf("%w: too many billboards (max %d)", ErrInvalidInput, domain.MaxProposalBillboards)
		}
		seen := make(map[int64]bool, len(req.BillboardIDs))
		for _, id := range req.BillboardIDs {
			if id <= 0 {
				return fmt.Errorf("%w: billboard ids must be positive", ErrInvalidInput)
			}
			if seen[id] {
				return fmt.Errorf("%w: duplicated billboard id=%d", ErrInvalidInput, id)
			}
			seen[id] = true
		}
	}

	if req.hasPeriodChange() {
		hasSlots := len(req.SlotIDs) > 0
		hasRange := req.StartDate != nil || req.EndDate != nil
		if hasSlots && hasRange {
			return fmt.Errorf("%w: slotIds and date range are mutually exclusive", ErrInvalidInput)
		}
		if hasRange && (req.StartDate == nil || req.EndDate == nil) {
			return fmt.Errorf("%w: startDate and endDate must be provided together", ErrInvalidInput)
		}
	}

	if req.Financials != nil {
		if req.Financials.TotalValue < 0 || req.Financials.DiscountValue < 0 {
			return fmt.Errorf("%w: financial values must not be negative", ErrInvalidInput)
		}
		if req.Financials.InstallmentCount < 0 {
			return fmt.Errorf("%w: installmentCount must not be negative", ErrInvalidInput)
		}
	}

	if req.PaymentTerms != nil && len(*req.PaymentTerms) > domain.MaxPaymentTermsLength {
		return fmt.Errorf("%w: paymentTerms too long", ErrInvalidInput)
	}

	return nil
}
