package create_proposal

import (
	"errors"
	"net/http"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	createProposal "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_proposal"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany     = "empresa não identificada"
	msgInvalidInput       = "dados da proposta inválidos"
	msgClientNotFound     = "cliente não encontrado"
	msgBillboardNotFound  = "outdoor não encontrado"
	msgSlotNotFound       = "quinzena não encontrada"
	msgInvalidPeriod      = "período inválido"
)

type Handler struct {
	useCase CreateProposalUseCase
	logger  Logger
}

func NewHandler(useCase CreateProposalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/proposals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	var req CreateProposalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /proposals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /proposals - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createProposal.ErrInvalidInput):
			h.logger.Warn("POST /proposals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createProposal.ErrClientNotFound):
			h.logger.Warn("POST /proposals - Client not found: client_id=%d, company_id=%d", req.ClientID, companyID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createProposal.ErrBillboardNotFound):
			h.logger.Warn("POST /proposals - Billboard not found: company_id=%d, error=%v", companyID, err)
			handlers.RespondNotFound(w, msgBillboardNotFound)

		case errors.Is(err, createProposal.ErrSlotNotFound):
			h.logger.Warn("POST /proposals - Slot not found: company_id=%d, error=%v", companyID, err)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createProposal.ErrInvalidPeriod):
			h.logger.Warn("POST /proposals - Invalid period: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("POST /proposals - Failed to create proposal: client_id=%d, company_id=%d, error=%v",
				req.ClientID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /proposals - Proposal created: proposal_id=%d, code=%s, company_id=%d",
		result.Proposal.ID, result.Proposal.ProposalCode, companyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
