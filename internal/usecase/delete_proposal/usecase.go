package delete_proposal

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
)

// Request entrada para exclusão de proposta
type Request struct {
	ProposalID int64
	CompanyID  int64
}

// Response contagem de reservas removidas na cascata
type Response struct {
	BookingsRemoved int64 `json:"bookingsRemoved"`
}

// UseCase exclusão de proposta com cascata sobre as reservas.
type UseCase struct {
	proposalRepo ProposalRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       Logger
}

// NewUseCase cria o usecase de exclusão de proposta
func NewUseCase(
	proposalRepo ProposalRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	n Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		proposalRepo: proposalRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     n,
		logger:       logger,
	}
}

// Execute apaga a proposta e todas as suas reservas na mesma transação.
// Sem foreign key entre as tabelas, a cascata é feita aqui; a varredura
// de reconciliação cobre o caso de uma exclusão parcial fora deste fluxo.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteProposal: id=%d company=%d", req.ProposalID, req.CompanyID)

	// 1. Validação de forma
	if req.ProposalID <= 0 || req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: proposalId and companyId must be positive", ErrInvalidInput)
	}

	// 2. Carrega a proposta para obter o código de correlação
	current, err := uc.proposalRepo.GetByID(ctx, req.ProposalID, req.CompanyID)
	if err != nil {
		if errors.Is(err, proposal.ErrProposalNotFound) {
			uc.logger.Warn("DeleteProposal: proposal id=%d not found in company=%d", req.ProposalID, req.CompanyID)
			return nil, ErrProposalNotFound
		}
		uc.logger.Error("DeleteProposal: failed to load proposal id=%d: %v", req.ProposalID, err)
		return nil, fmt.Errorf("%w: failed to load proposal: %v", ErrInternal, err)
	}

	var removed int64

	// 3. Proposta + reservas, atômicos
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.proposalRepo.Delete(txCtx, current.ID, current.CompanyID); err != nil {
			uc.logger.Error("DeleteProposal: delete proposal id=%d failed: %v", current.ID, err)
			return fmt.Errorf("%w: delete proposal failed: %v", ErrInternal, err)
		}

		n, err := uc.bookingRepo.DeleteByProposalCode(txCtx, current.Code)
		if err != nil {
			uc.logger.Error("DeleteProposal: delete bookings failed for code=%s: %v", current.Code, err)
			return fmt.Errorf("%w: delete bookings failed: %v", ErrInternal, err)
		}
		removed = n

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeleteProposal: deleted proposal id=%d code=%s with %d bookings",
		current.ID, current.Code, removed)

	// 4. Notificação fire-and-forget, já fora da transação
	uc.notifier.Enqueue(notifier.Event{
		CompanyID: current.CompanyID,
		Type:      notifier.EventProposalDeleted,
		Payload: map[string]interface{}{
			"proposalId":   current.ID,
			"proposalCode": current.Code,
			"clientId":     current.ClientID,
		},
	})

	return &Response{BookingsRemoved: removed}, nil
}
