package periods

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// SlotRepository interface do repositório do calendário quinzenal
type SlotRepository interface {
	UpsertMany(ctx context.Context, slots []*domain.BiWeekSlot) (int64, error)
	FindByIDs(ctx context.Context, companyID int64, ids []string) ([]*domain.BiWeekSlot, error)
	FindByDate(ctx context.Context, companyID int64, date time.Time) (*domain.BiWeekSlot, error)
	CountByYear(ctx context.Context, companyID int64, year int) (int64, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
