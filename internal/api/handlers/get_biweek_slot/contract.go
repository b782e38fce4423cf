package get_biweek_slot

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

type PeriodService interface {
	FindByIDs(ctx context.Context, companyID int64, ids []string) ([]*domain.BiWeekSlot, error)
	FindByDate(ctx context.Context, companyID int64, date time.Time) (*domain.BiWeekSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
