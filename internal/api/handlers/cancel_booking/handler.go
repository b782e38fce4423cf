package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings"
)

const (
	msgInvalidBookingID = "id da reserva inválido"
	msgMissingCompany   = "empresa não identificada"
	msgBookingNotFound  = "reserva não encontrada"
)

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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingCompany)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, companyID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d, company_id=%d", bookingID, companyID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel: booking_id=%d, company_id=%d, error=%v",
				bookingID, companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, company_id=%d", bookingID, companyID)
	w.WriteHeader(http.StatusNoContent)
}
