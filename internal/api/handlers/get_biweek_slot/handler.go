package get_biweek_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

const (
	msgInvalidDate    = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany = "empresa não identificada"
	msgMissingDate    = "parâmetro date é obrigatório"
	msgSlotNotFound   = "quinzena não encontrada"
)

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

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	slotID := mux.Vars(r)["slotId"]

	slots, err := h.service.FindByIDs(r.Context(), companyID, []string{slotID})
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /slots/{id} - Failed to load: slot_id=%s, company_id=%d, error=%v",
				slotID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlot(slots[0]))
}

// HandleByDate GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) HandleByDate(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := h.service.FindByDate(r.Context(), companyID, date)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /slots - Failed to load by date: date=%s, company_id=%d, error=%v",
				raw, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlot(slot))
}
