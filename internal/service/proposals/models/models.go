package models

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// FinancialsResponse valores comerciais da proposta
type FinancialsResponse struct {
	TotalValue       float64 `json:"totalValue"`
	DiscountValue    float64 `json:"discountValue"`
	InstallmentCount int     `json:"installmentCount"`
}

// ProposalResponse representação de uma proposta para os handlers
type ProposalResponse struct {
	ID           int64              `json:"id"`
	CompanyID    int64              `json:"companyId"`
	ClientID     int64              `json:"clientId"`
	ProposalCode string             `json:"proposalCode"`
	PeriodType   string             `json:"periodType"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	SlotIDs      []string           `json:"slotIds"`
	BillboardIDs []int64            `json:"billboardIds"`
	Status       string             `json:"status"`
	Financials   FinancialsResponse `json:"financials"`
	PaymentTerms *string            `json:"paymentTerms,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// ProposalWithBookingsResponse proposta com suas reservas materializadas
type ProposalWithBookingsResponse struct {
	Proposal ProposalResponse `json:"proposal"`
	Bookings []BookingSummary `json:"bookings"`
}

// BookingSummary resumo de uma reserva materializada
type BookingSummary struct {
	ID          int64     `json:"id"`
	BillboardID int64     `json:"billboardId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
}

// FromDomainProposal converte a proposta de domínio para o modelo de resposta
func FromDomainProposal(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		ClientID:     p.ClientID,
		ProposalCode: p.Code,
		PeriodType:   string(p.PeriodType),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		SlotIDs:      p.SlotIDs,
		BillboardIDs: p.BillboardIDs,
		Status:       string(p.Status),
		Financials: FinancialsResponse{
			TotalValue:       p.Financials.TotalValue,
			DiscountValue:    p.Financials.DiscountValue,
			InstallmentCount: p.Financials.InstallmentCount,
		},
		PaymentTerms: p.PaymentTerms,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromDomainBookings converte reservas de domínio em resumos
func FromDomainBookings(bookings []*domain.Booking) []BookingSummary {
	out := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingSummary{
			ID:          b.ID,
			BillboardID: b.BillboardID,
			StartDate:   b.StartDate,
			EndDate:     b.EndDate,
			Status:      string(b.Status),
		})
	}
	return out
}
