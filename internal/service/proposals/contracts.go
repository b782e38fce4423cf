package proposals

import (
	"context"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// ProposalRepository interface do repositório de propostas
type ProposalRepository interface {
	GetByID(ctx context.Context, id, companyID int64) (*domain.Proposal, error)
}

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	ListByProposalCode(ctx context.Context, proposalCode string) ([]*domain.Booking, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
