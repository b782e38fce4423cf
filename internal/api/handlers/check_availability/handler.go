package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingCompany     = "empresa não identificada"
	msgInvalidInput       = "dados da consulta inválidos"
	msgInvalidRange       = "intervalo de datas inválido"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	BillboardID int64  `json:"billboardId"`
	StartDate   string `json:"startDate"` // "2026-03-01"
	EndDate     string `json:"endDate"`
	ExcludeID   *int64 `json:"excludeBookingId,omitempty"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), &models.CheckAvailabilityRequest{
		BillboardID: req.BillboardID,
		CompanyID:   companyID,
		StartDate:   start,
		EndDate:     end,
		ExcludeID:   req.ExcludeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /bookings/check-availability - Failed: billboard_id=%d, company_id=%d, error=%v",
				req.BillboardID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
