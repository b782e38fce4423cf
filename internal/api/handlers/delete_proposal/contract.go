package delete_proposal

import (
	"context"

	deleteProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/delete_proposal"
)

type DeleteProposalUseCase interface {
	Execute(ctx context.Context, req *deleteProposal.Request) (*deleteProposal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
