package get_proposal

import (
	"context"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

type ProposalService interface {
	GetByID(ctx context.Context, id, companyID int64) (*models.ProposalWithBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
