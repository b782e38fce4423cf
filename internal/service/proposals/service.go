package proposals

import (
	"context"
	"errors"
	"fmt"

	proposalRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

// Service leitura de propostas. Mutações ficam nos usecases.
type Service struct {
	proposalRepo ProposalRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService cria o serviço de propostas
func NewService(proposalRepo ProposalRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		proposalRepo: proposalRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetByID busca a proposta e as reservas correlacionadas pelo código
func (s *Service) GetByID(ctx context.Context, id, companyID int64) (*models.ProposalWithBookingsResponse, error) {
	p, err := s.proposalRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, proposalRepo.ErrProposalNotFound) {
			s.logger.Warn("GetByID: proposal id=%d not found for company=%d", id, companyID)
			return nil, ErrProposalNotFound
		}
		s.logger.Error("GetByID: repository error for proposal id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListByProposalCode(ctx, p.Code)
	if err != nil {
		s.logger.Error("GetByID: failed to list bookings for code=%s: %v", p.Code, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return &models.ProposalWithBookingsResponse{
		Proposal: models.FromDomainProposal(p),
		Bookings: models.FromDomainBookings(bookings),
	}, nil
}
