package run_reconciliation

import (
	"context"

	reconcileProposals "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/reconcile_proposals"
)

type ReconcileUseCase interface {
	Execute(ctx context.Context) (*reconcileProposals.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
