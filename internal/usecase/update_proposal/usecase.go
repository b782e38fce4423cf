package update_proposal

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
	proposalmodels "github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

// UseCase atualização de proposta em andamento com a cascata sobre as
// reservas materializadas.
type UseCase struct {
	proposalRepo  ProposalRepository
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	billboardRepo BillboardRepository
	resolver      PeriodResolver
	txManager     TransactionManager
	notifier      Notifier
	logger        Logger
}

// NewUseCase cria o usecase de atualização de proposta
func NewUseCase(
	proposalRepo ProposalRepository,
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	billboardRepo BillboardRepository,
	resolver PeriodResolver,
	txManager TransactionManager,
	n Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		proposalRepo:  proposalRepo,
		bookingRepo:   bookingRepo,
		clientRepo:    clientRepo,
		billboardRepo: billboardRepo,
		resolver:      resolver,
		txManager:     txManager,
		notifier:      n,
		logger:        logger,
	}
}

// Execute aplica o patch sobre a proposta e propaga para as reservas na
// mesma transação. Troca de período é um update em massa pelo código da
// proposta; troca de pacote vira um diff: reservas dos outdoors removidos
// são apagadas, outdoors novos ganham reservas no período vigente, e os
// que permanecem não são tocados.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateProposal: id=%d company=%d", req.ProposalID, req.CompanyID)

	// 1. Validação de forma
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateProposal: validation failed: %v", err)
		return nil, err
	}

	// 2. Carrega a proposta
	current, err := uc.proposalRepo.GetByID(ctx, req.ProposalID, req.CompanyID)
	if err != nil {
		if errors.Is(err, proposal.ErrProposalNotFound) {
			uc.logger.Warn("UpdateProposal: proposal id=%d not found in company=%d", req.ProposalID, req.CompanyID)
			return nil, ErrProposalNotFound
		}
		uc.logger.Error("UpdateProposal: failed to load proposal id=%d: %v", req.ProposalID, err)
		return nil, fmt.Errorf("%w: failed to load proposal: %v", ErrInternal, err)
	}

	// 3. Somente propostas em andamento são mutáveis
	if !current.CanBeUpdated() {
		uc.logger.Warn("UpdateProposal: proposal id=%d is %s, refusing update", current.ID, current.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrProposalLocked, current.Status)
	}

	// 4. Novo cliente pertence à empresa
	if req.ClientID != nil {
		exists, err := uc.clientRepo.Exists(ctx, *req.ClientID, req.CompanyID)
		if err != nil {
			uc.logger.Error("UpdateProposal: failed to check client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to check client: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("UpdateProposal: client id=%d not found in company=%d", *req.ClientID, req.CompanyID)
			return nil, ErrClientNotFound
		}
	}

	// 5. Novos outdoors pertencem à empresa
	if req.hasBillboardChange() {
		existing, err := uc.billboardRepo.ExistingIDs(ctx, req.CompanyID, req.BillboardIDs)
		if err != nil {
			uc.logger.Error("UpdateProposal: failed to check billboards: %v", err)
			return nil, fmt.Errorf("%w: failed to check billboards: %v", ErrInternal, err)
		}
		for _, id := range req.BillboardIDs {
			if !existing[id] {
				uc.logger.Warn("UpdateProposal: billboard id=%d not found in company=%d", id, req.CompanyID)
				return nil, fmt.Errorf("%w: id=%d", ErrBillboardNotFound, id)
			}
		}
	}

	// 6. Resolve o novo período, se houver
	var newPeriod *domain.Period
	if req.hasPeriodChange() {
		resolved, err := uc.resolver.Resolve(ctx, req.CompanyID, periods.ResolveInput{
			SlotIDs:   req.SlotIDs,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return nil, translateResolveError(err)
		}
		newPeriod = &resolved
	}

	var added, removed int64

	// 7. Patch na proposta + cascata nas reservas, atômicos
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 7.1. Período primeiro: outdoors adicionados no mesmo patch já
		// nascem com o período novo
		if newPeriod != nil {
			current.PeriodType = newPeriod.Type
			current.StartDate = newPeriod.StartDate
			current.EndDate = newPeriod.EndDate
			current.SlotIDs = newPeriod.SlotIDs

			if _, err := uc.bookingRepo.UpdatePeriodByProposalCode(txCtx, current.Code, *newPeriod); err != nil {
				uc.logger.Error("UpdateProposal: period cascade failed for code=%s: %v", current.Code, err)
				return fmt.Errorf("%w: period cascade failed: %v", ErrInternal, err)
			}
		}

		// 7.2. Troca de cliente propaga para todas as reservas
		if req.ClientID != nil && *req.ClientID != current.ClientID {
			current.ClientID = *req.ClientID

			if _, err := uc.bookingRepo.UpdateOwnerByProposalCode(txCtx, current.Code, current.ClientID, current.CompanyID); err != nil {
				uc.logger.Error("UpdateProposal: owner cascade failed for code=%s: %v", current.Code, err)
				return fmt.Errorf("%w: owner cascade failed: %v", ErrInternal, err)
			}
		}

		// 7.3. Diff do pacote de outdoors
		if req.hasBillboardChange() {
			toRemove, toAdd := diffBillboards(current.BillboardIDs, req.BillboardIDs)
			current.BillboardIDs = req.BillboardIDs

			if len(toRemove) > 0 {
				n, err := uc.bookingRepo.DeleteByProposalCodeAndBillboards(txCtx, current.Code, toRemove)
				if err != nil {
					uc.logger.Error("UpdateProposal: delete bookings failed for code=%s: %v", current.Code, err)
					return fmt.Errorf("%w: delete bookings failed: %v", ErrInternal, err)
				}
				removed = n
			}

			if len(toAdd) > 0 {
				bookings := buildBookings(current, toAdd)
				n, err := uc.bookingRepo.InsertMany(txCtx, bookings)
				if err != nil {
					uc.logger.Error("UpdateProposal: insert bookings failed for code=%s: %v", current.Code, err)
					return fmt.Errorf("%w: insert bookings failed: %v", ErrInternal, err)
				}
				added = n
			}
		}

		// 7.4. Campos sem cascata
		if req.Financials != nil {
			current.Financials = req.Financials.toDomain()
		}
		if req.PaymentTerms != nil {
			current.PaymentTerms = req.PaymentTerms
		}

		if err := uc.proposalRepo.Update(txCtx, current); err != nil {
			uc.logger.Error("UpdateProposal: update proposal id=%d failed: %v", current.ID, err)
			return fmt.Errorf("%w: update proposal failed: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateProposal: updated proposal id=%d code=%s (added=%d removed=%d)",
		current.ID, current.Code, added, removed)

	// 8. Notificação fire-and-forget, já fora da transação
	uc.notifier.Enqueue(notifier.Event{
		CompanyID: current.CompanyID,
		Type:      notifier.EventProposalUpdated,
		Payload: map[string]interface{}{
			"proposalId":   current.ID,
			"proposalCode": current.Code,
			"clientId":     current.ClientID,
			"billboardIds": current.BillboardIDs,
			"startDate":    current.StartDate,
			"endDate":      current.EndDate,
		},
	})

	return &Response{
		Proposal:        proposalmodels.FromDomainProposal(current),
		BookingsAdded:   added,
		BookingsRemoved: removed,
	}, nil
}

// diffBillboards compara o pacote atual com o desejado e devolve o que
// sai e o que entra; a interseção não é tocada
func diffBillboards(current, desired []int64) (toRemove, toAdd []int64) {
	currentSet := make(map[int64]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[int64]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	for _, id := range current {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range desired {
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}
	return toRemove, toAdd
}

// buildBookings monta reservas ativas para os outdoors adicionados,
// sob o período vigente da proposta
func buildBookings(p *domain.Proposal, billboardIDs []int64) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(billboardIDs))
	for _, billboardID := range billboardIDs {
		bookings = append(bookings, &domain.Booking{
			BillboardID:  billboardID,
			ClientID:     p.ClientID,
			CompanyID:    p.CompanyID,
			PeriodType:   p.PeriodType,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			SlotIDs:      p.SlotIDs,
			Status:       domain.StatusAtivo,
			Origin:       domain.OriginProposal,
			ProposalCode: &p.Code,
		})
	}
	return bookings
}

// translateResolveError converte os erros do resolver para a taxonomia
// deste usecase
func translateResolveError(err error) error {
	switch {
	case errors.Is(err, periods.ErrSlotNotFound):
		return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
	case errors.Is(err, periods.ErrInvalidPeriod):
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	default:
		return fmt.Errorf("%w: period resolution failed: %v", ErrInternal, err)
	}
}
