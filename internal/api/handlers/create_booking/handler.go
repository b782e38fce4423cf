package create_booking

import (
	"errors"
	"net/http"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	createBooking "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany     = "empresa não identificada"
	msgInvalidInput       = "dados da reserva inválidos"
	msgClientNotFound     = "cliente não encontrado"
	msgBillboardNotFound  = "outdoor não encontrado"
	msgSlotNotFound       = "quinzena não encontrada"
	msgInvalidPeriod      = "período inválido"
	msgBookingConflict    = "outdoor já reservado no período selecionado"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Conflict: billboard_id=%d, company_id=%d, conflicts=%d",
				req.BillboardID, companyID, len(conflict.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(conflict))

		case errors.Is(err, createBooking.ErrBookingConflict):
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d, company_id=%d", req.ClientID, companyID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrBillboardNotFound):
			h.logger.Warn("POST /bookings - Billboard not found: billboard_id=%d, company_id=%d", req.BillboardID, companyID)
			handlers.RespondNotFound(w, msgBillboardNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: company_id=%d, error=%v", companyID, err)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrInvalidPeriod):
			h.logger.Warn("POST /bookings - Invalid period: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: billboard_id=%d, company_id=%d, error=%v",
				req.BillboardID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, billboard_id=%d, company_id=%d",
		result.ID, result.BillboardID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
