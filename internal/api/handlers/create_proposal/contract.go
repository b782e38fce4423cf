package create_proposal

import (
	"context"

	createProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_proposal"
)

type CreateProposalUseCase interface {
	Execute(ctx context.Context, req *createProposal.Request) (*createProposal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
