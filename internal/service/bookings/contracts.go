package bookings

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
)

// BookingRepository interface do repositório de reservas
type BookingRepository interface {
	GetByID(ctx context.Context, id, companyID int64) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, billboardID, companyID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id, companyID int64) error
}

// ClientRepository interface de leitura de clientes
type ClientRepository interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
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
