package get_proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals"
)

const (
	msgInvalidProposalID = "id da proposta inválido"
	msgMissingCompany    = "empresa não identificada"
	msgProposalNotFound  = "proposta não encontrada"
)

type Handler struct {
	service ProposalService
	logger  Logger
}

func NewHandler(service ProposalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/proposals/{proposalId}
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

	result, err := h.service.GetByID(r.Context(), proposalID, companyID)
	if err != nil {
		switch {
		case errors.Is(err, proposals.ErrProposalNotFound):
			handlers.RespondNotFound(w, msgProposalNotFound)

		default:
			h.logger.Error("GET /proposals/{id} - Failed to load: proposal_id=%d, company_id=%d, error=%v",
				proposalID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
