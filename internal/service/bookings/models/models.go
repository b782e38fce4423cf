package models

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// CheckAvailabilityRequest consulta de disponibilidade (dry-run, sem lock)
type CheckAvailabilityRequest struct {
	BillboardID int64
	CompanyID   int64
	StartDate   time.Time
	EndDate     time.Time
	ExcludeID   *int64
}

// ConflictingBooking reserva conflitante com nome do cliente resolvido
type ConflictingBooking struct {
	BookingID    int64     `json:"bookingId"`
	ClientID     int64     `json:"clientId"`
	ClientName   string    `json:"clientName,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	ProposalCode *string   `json:"proposalCode,omitempty"`
}

// AvailabilityResponse resultado da consulta de disponibilidade
type AvailabilityResponse struct {
	Available bool                 `json:"available"`
	Conflicts []ConflictingBooking `json:"conflicts"`
}

// BookingResponse representação de uma reserva para os handlers
type BookingResponse struct {
	ID           int64     `json:"id"`
	BillboardID  int64     `json:"billboardId"`
	ClientID     int64     `json:"clientId"`
	CompanyID    int64     `json:"companyId"`
	PeriodType   string    `json:"periodType"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	SlotIDs      []string  `json:"slotIds"`
	Status       string    `json:"status"`
	Origin       string    `json:"origin"`
	ProposalCode *string   `json:"proposalCode,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromDomainBooking converte a reserva de domínio para o modelo de resposta
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		BillboardID:  b.BillboardID,
		ClientID:     b.ClientID,
		CompanyID:    b.CompanyID,
		PeriodType:   string(b.PeriodType),
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		SlotIDs:      b.SlotIDs,
		Status:       string(b.Status),
		Origin:       string(b.Origin),
		ProposalCode: b.ProposalCode,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
