package generate_slots

import (
	"context"
	"time"
)

type PeriodService interface {
	GenerateYear(ctx context.Context, companyID int64, year int, anchor *time.Time) (created, total int64, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
