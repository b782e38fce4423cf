package create_proposal

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

// ProposalRepository interface do repositório de propostas
type ProposalRepository interface {
	Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
}

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	InsertMany(ctx context.Context, bookings []*domain.Booking) (int64, error)
}

// ClientRepository interface de leitura de clientes
type ClientRepository interface {
	Exists(ctx context.Context, id, companyID int64) (bool, error)
}

// BillboardRepository interface de leitura de outdoors
type BillboardRepository interface {
	ExistingIDs(ctx context.Context, companyID int64, ids []int64) (map[int64]bool, error)
}

// PeriodResolver normaliza a entrada bruta de período
type PeriodResolver interface {
	Resolve(ctx context.Context, companyID int64, input periods.ResolveInput) (domain.Period, error)
}

// TransactionManager interface para controle de transações
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier fila de notificações fire-and-forget
type Notifier interface {
	Enqueue(event notifier.Event)
}

// TimeProvider fonte de tempo (injetável nos testes)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provedor de tempo real para produção
type RealTimeProvider struct{}

// Now retorna o horário atual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
