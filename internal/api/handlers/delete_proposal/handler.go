package delete_proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	deleteProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/delete_proposal"
)

const (
	msgInvalidProposalID = "id da proposta inválido"
	msgMissingCompany    = "empresa não identificada"
	msgProposalNotFound  = "proposta não encontrada"
)

type Handler struct {
	useCase DeleteProposalUseCase
	logger  Logger
}

func NewHandler(useCase DeleteProposalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/proposals/{proposalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	proposalID, err := strconv.ParseInt(mux.Vars(r)["proposalId"], 10, 64)
	if err != nil || proposalID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidProposalID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteProposal.Request{
		ProposalID: proposalID,
		CompanyID:  companyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteProposal.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProposalID)

		case errors.Is(err, deleteProposal.ErrProposalNotFound):
			h.logger.Warn("DELETE /proposals/{id} - Proposal not found: proposal_id=%d, company_id=%d", proposalID, companyID)
			handlers.RespondNotFound(w, msgProposalNotFound)

		default:
			h.logger.Error("DELETE /proposals/{id} - Failed to delete: proposal_id=%d, company_id=%d, error=%v",
				proposalID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /proposals/{id} - Proposal deleted: proposal_id=%d, company_id=%d, bookings_removed=%d",
		proposalID, companyID, result.BookingsRemoved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
