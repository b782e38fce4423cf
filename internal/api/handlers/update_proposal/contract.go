package update_proposal

import (
	"context"

	updateProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/update_proposal"
)

type UpdateProposalUseCase interface {
	Execute(ctx context.Context, req *updateProposal.Request) (*updateProposal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
