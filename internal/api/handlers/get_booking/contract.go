package get_booking

import (
	"context"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id, companyID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
