package create_booking

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, billboardID, companyID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// ClientRepository interface de leitura de clientes
type ClientRepository interface {
	Exists(ctx context.Context, id, companyID int64) (bool, error)
}

// BillboardRepository interface de leitura de outdoors
type BillboardRepository interface {
	Exists(ctx context.Context, id, companyID int64) (bool, error)
}

// PeriodResolver normaliza a entrada bruta de período
type PeriodResolver interface {
	Resolve(ctx context.Context, companyID int64, input periods.ResolveInput) (domain.Period, error)
}

// TransactionManager interface para controle de transações
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
