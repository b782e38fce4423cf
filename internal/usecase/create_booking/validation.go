package create_booking

import "fmt"

// validateRequest valida a forma da entrada antes de qualquer I/O
func validateRequest(req *Request) error {
	if req.BillboardID <= 0 {
		return fmt.Errorf("%w: billboardId must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}

	hasSlots := len(req.SlotIDs) > 0
	hasRange := req.StartDate != nil || req.EndDate != nil

	if !hasSlots && !hasRange {
		return fmt.Errorf("%w: either slotIds or a date range is required", ErrInvalidInput)
	}
	if hasSlots && hasRange {
		return fmt.Errorf("%w: slotIds and date range are mutually exclusive", ErrInvalidInput)
	}

	return nil
}
