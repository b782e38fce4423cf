package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	bookingRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/booking"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings/models"
)

// Service operações de leitura e cancelamento de reservas.
// A criação fica no usecase create_booking, que precisa de transação.
type Service struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	notifier    Notifier
	logger      Logger
}

// NewService cria o serviço de reservas
func NewService(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	n Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		notifier:    n,
		logger:      logger,
	}
}

// GetByID busca uma reserva pelo ID no escopo da empresa
func (s *Service) GetByID(ctx context.Context, id, companyID int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for company=%d", id, companyID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel remove fisicamente a reserva e enfileira a notificação de
// cancelamento. A notificação é fire-and-forget: nunca falha a operação.
func (s *Service) Cancel(ctx context.Context, id, companyID int64) error {
	s.logger.Info("Cancel: deleting booking id=%d company=%d", id, companyID)

	booking, err := s.bookingRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found for company=%d", id, companyID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: delete failed for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifier.Enqueue(notifier.Event{
		CompanyID: companyID,
		Type:      notifier.EventBookingCancelled,
		Payload: map[string]interface{}{
			"bookingId":   booking.ID,
			"billboardId": booking.BillboardID,
			"clientId":    booking.ClientID,
			"startDate":   booking.StartDate,
			"endDate":     booking.EndDate,
		},
	})

	s.logger.Info("Cancel: booking id=%d deleted", id)
	return nil
}

// CheckAvailability dry-run de disponibilidade: lista as reservas ativas
// que sobrepõem o intervalo, com os nomes dos clientes resolvidos.
// Não trava nada; a checagem definitiva acontece na criação.
func (s *Service) CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) (*models.AvailabilityResponse, error) {
	if req.BillboardID <= 0 || req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: billboardId and companyId must be positive", ErrInvalidInput)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidRange)
	}

	conflicts, err := s.bookingRepo.FindOverlapping(ctx, req.BillboardID, req.CompanyID, req.StartDate, req.EndDate, req.ExcludeID)
	if err != nil {
		s.logger.Error("CheckAvailability: repository error for billboard=%d: %v", req.BillboardID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	names, err := s.clientNames(ctx, conflicts)
	if err != nil {
		// Nomes são enriquecimento; a consulta continua válida sem eles
		s.logger.Warn("CheckAvailability: failed to resolve client names: %v", err)
		names = map[int64]string{}
	}

	resp := &models.AvailabilityResponse{
		Available: len(conflicts) == 0,
		Conflicts: make([]models.ConflictingBooking, 0, len(conflicts)),
	}

	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, models.ConflictingBooking{
			BookingID:    c.ID,
			ClientID:     c.ClientID,
			ClientName:   names[c.ClientID],
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			ProposalCode: c.ProposalCode,
		})
	}

	return resp, nil
}

func (s *Service) clientNames(ctx context.Context, bookings []*domain.Booking) (map[int64]string, error) {
	ids := make([]int64, 0, len(bookings))
	seen := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.ClientID] {
			seen[b.ClientID] = true
			ids = append(ids, b.ClientID)
		}
	}
	return s.clientRepo.NamesByIDs(ctx, ids)
}
