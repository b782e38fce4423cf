package run_reconciliation

import (
	"net/http"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
)

type Handler struct {
	useCase ReconcileUseCase
	logger  Logger
}

func NewHandler(useCase ReconcileUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reconciliation/run
// Dispara uma passada da varredura fora do agendamento; útil logo após
// uma manutenção manual no banco.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /reconciliation/run - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reconciliation/run - Sweep finished: checked=%d, problems=%d, orphans_removed=%d",
		result.ProposalsChecked, len(result.Reports), result.OrphanBookingsRemoved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
