package reconcile_proposals

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// ProposalRepository interface do repositório de propostas
type ProposalRepository interface {
	ListByStatuses(ctx context.Context, statuses []domain.ProposalStatus) ([]*domain.Proposal, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	ListByProposalCode(ctx context.Context, proposalCode string) ([]*domain.Booking, error)
	InsertMany(ctx context.Context, bookings []*domain.Booking) (int64, error)
	DeleteByProposalCode(ctx context.Context, proposalCode string) (int64, error)
	DeleteByProposalCodeAndBillboards(ctx context.Context, proposalCode string, billboardIDs []int64) (int64, error)
	UpdatePeriodByProposalCode(ctx context.Context, proposalCode string, period domain.Period) (int64, error)
	UpdateOwnerByProposalCode(ctx context.Context, proposalCode string, clientID, companyID int64) (int64, error)
	DistinctProposalCodes(ctx context.Context) ([]string, error)
}

// BillboardRepository interface de leitura de outdoors
type BillboardRepository interface {
	ExistingIDs(ctx context.Context, companyID int64, ids []int64) (map[int64]bool, error)
}

// TransactionManager interface para controle de transações
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider fonte de tempo (injetável nos testes)
type TimeProvider interface {
	Now() time.Time
}

// Metrics contadores da varredura; pode ser nil
type Metrics interface {
	IncReconcileRun()
	AddReconcileRepairs(kind string, n int)
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
