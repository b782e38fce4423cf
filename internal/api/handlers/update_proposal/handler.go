package update_proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	updateProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/update_proposal"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidProposalID  = "id da proposta inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany     = "empresa não identificada"
	msgInvalidInput       = "dados da proposta inválidos"
	msgProposalNotFound   = "proposta não encontrada"
	msgProposalLocked     = "proposta concluída ou vencida não pode ser alterada"
	msgClientNotFound     = "cliente não encontrado"
	msgBillboardNotFound  = "outdoor não encontrado"
	msgSlotNotFound       = "quinzena não encontrada"
	msgInvalidPeriod      = "período inválido"
)

type Handler struct {
	useCase UpdateProposalUseCase
	logger  Logger
}

func NewHandler(useCase UpdateProposalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/proposals/{proposalId}
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

	var req UpdateProposalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /proposals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(proposalID, companyID)
	if err != nil {
		h.logger.Warn("PATCH /proposals/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateProposal.ErrInvalidInput):
			h.logger.Warn("PATCH /proposals/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateProposal.ErrProposalNotFound):
			h.logger.Warn("PATCH /proposals/{id} - Proposal not found: proposal_id=%d, company_id=%d", proposalID, companyID)
			handlers.RespondNotFound(w, msgProposalNotFound)

		case errors.Is(err, updateProposal.ErrProposalLocked):
			h.logger.Warn("PATCH /proposals/{id} - Proposal locked: proposal_id=%d, company_id=%d", proposalID, companyID)
			handlers.RespondUnprocessable(w, msgProposalLocked)

		case errors.Is(err, updateProposal.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateProposal.ErrBillboardNotFound):
			h.logger.Warn("PATCH /proposals/{id} - Billboard not found: company_id=%d, error=%v", companyID, err)
			handlers.RespondNotFound(w, msgBillboardNotFound)

		case errors.Is(err, updateProposal.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateProposal.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("PATCH /proposals/{id} - Failed to update: proposal_id=%d, company_id=%d, error=%v",
				proposalID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /proposals/{id} - Proposal updated: proposal_id=%d, company_id=%d, added=%d, removed=%d",
		proposalID, companyID, result.BookingsAdded, result.BookingsRemoved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
