package generate_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany     = "empresa não identificada"
	msgInvalidYear        = "ano inválido"
)

// GenerateSlotsRequest HTTP request model.
// anchorDate define o início da primeira quinzena; se omitido, 1º de
// janeiro do ano informado.
type GenerateSlotsRequest struct {
	Year       int     `json:"year"`
	AnchorDate *string `json:"anchorDate,omitempty"` // "2026-01-05"
}

// GenerateSlotsResponse resultado da geração do calendário
type GenerateSlotsResponse struct {
	Year    int   `json:"year"`
	Created int64 `json:"created"`
	Total   int64 `json:"total"`
}

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var anchor *time.Time
	if req.AnchorDate != nil {
		t, err := time.Parse(domain.DateFormat, *req.AnchorDate)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		anchor = &t
	}

	created, total, err := h.service.GenerateYear(r.Context(), companyID, req.Year, anchor)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidYear):
			h.logger.Warn("POST /slots/generate - Invalid year: year=%d, company_id=%d", req.Year, companyID)
			handlers.RespondBadRequest(w, msgInvalidYear)

		default:
			h.logger.Error("POST /slots/generate - Failed: year=%d, company_id=%d, error=%v",
				req.Year, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate - Calendar generated: year=%d, company_id=%d, created=%d, total=%d",
		req.Year, companyID, created, total)
	handlers.RespondJSON(w, http.StatusOK, GenerateSlotsResponse{
		Year:    req.Year,
		Created: created,
		Total:   total,
	})
}
