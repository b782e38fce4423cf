package create_booking

import (
	"fmt"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	createBooking "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// O período vem como slotIds OU como intervalo startDate/endDate.
type CreateBookingRequest struct {
	BillboardID int64    `json:"billboardId"`
	ClientID    int64    `json:"clientId"`
	SlotIDs     []string `json:"slotIds,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"` // "2026-03-01"
	EndDate     *string  `json:"endDate,omitempty"`
}

// ToUseCaseRequest converte o HTTP request para o modelo do use case
func (r *CreateBookingRequest) ToUseCaseRequest(companyID int64) (*createBooking.Request, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BillboardID: r.BillboardID,
		ClientID:    r.ClientID,
		CompanyID:   companyID,
		SlotIDs:     r.SlotIDs,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// ConflictResponse corpo do 409 com as reservas que impedem a criação
type ConflictResponse struct {
	Error     string            `json:"error"`
	Conflicts []ConflictSummary `json:"conflicts"`
}

// ConflictSummary resumo de uma reserva conflitante
type ConflictSummary struct {
	BookingID    int64   `json:"bookingId"`
	ClientID     int64   `json:"clientId"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	ProposalCode *string `json:"proposalCode,omitempty"`
}

// FromConflictError converte o erro de sobreposição no corpo do 409
func FromConflictError(e *createBooking.ConflictError) *ConflictResponse {
	out := &ConflictResponse{
		Error:     "outdoor já reservado no período selecionado",
		Conflicts: make([]ConflictSummary, 0, len(e.Conflicts)),
	}
	for _, b := range e.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictSummary{
			BookingID:    b.ID,
			ClientID:     b.ClientID,
			StartDate:    b.StartDate.Format(domain.DateFormat),
			EndDate:      b.EndDate.Format(domain.DateFormat),
			ProposalCode: b.ProposalCode,
		})
	}
	return out
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
