package delete_proposal

import (
	"context"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
)

// ProposalRepository interface do repositório de propostas
type ProposalRepository interface {
	GetByID(ctx context.Context, id, companyID int64) (*domain.Proposal, error)
	Delete(ctx context.Context, id, companyID int64) error
}

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	DeleteByProposalCode(ctx context.Context, proposalCode string) (int64, error)
}

// TransactionManager interface para controle de transações
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier fila de notificações fire-and-forget
type Notifier interface {
	Enqueue(event notifier.Event)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
