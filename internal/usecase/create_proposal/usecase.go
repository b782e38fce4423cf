package create_proposal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
	proposalmodels "github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals/models"
)

// UseCase criação de proposta com materialização das reservas do pacote.
type UseCase struct {
	proposalRepo  ProposalRepository
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	billboardRepo BillboardRepository
	resolver      PeriodResolver
	txManager     TransactionManager
	notifier      Notifier
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase cria o usecase de criação de proposta
func NewUseCase(
	proposalRepo ProposalRepository,
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	billboardRepo BillboardRepository,
	resolver PeriodResolver,
	txManager TransactionManager,
	n Notifier,
	timeProvider TimeProvider,
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
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute cria a proposta e materializa uma reserva por outdoor do pacote,
// tudo na mesma transação: ou a proposta nasce com todas as suas reservas,
// ou nada é persistido.
//
// A materialização não checa sobreposição com reservas existentes: propostas
// representam intenção comercial e podem disputar as mesmas janelas; o
// conflito é resolvido fora deste motor.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateProposal: client=%d company=%d billboards=%d",
		req.ClientID, req.CompanyID, len(req.BillboardIDs))

	// 1. Validação de forma
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateProposal: validation failed: %v", err)
		return nil, err
	}

	// 2. Cliente pertence à empresa
	exists, err := uc.clientRepo.Exists(ctx, req.ClientID, req.CompanyID)
	if err != nil {
		uc.logger.Error("CreateProposal: failed to check client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to check client: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateProposal: client id=%d not found in company=%d", req.ClientID, req.CompanyID)
		return nil, ErrClientNotFound
	}

	// 3. Todos os outdoors pertencem à empresa
	existing, err := uc.billboardRepo.ExistingIDs(ctx, req.CompanyID, req.BillboardIDs)
	if err != nil {
		uc.logger.Error("CreateProposal: failed to check billboards: %v", err)
		return nil, fmt.Errorf("%w: failed to check billboards: %v", ErrInternal, err)
	}
	for _, id := range req.BillboardIDs {
		if !existing[id] {
			uc.logger.Warn("CreateProposal: billboard id=%d not found in company=%d", id, req.CompanyID)
			return nil, fmt.Errorf("%w: id=%d", ErrBillboardNotFound, id)
		}
	}

	// 4. Resolve o período canônico
	period, err := uc.resolver.Resolve(ctx, req.CompanyID, periods.ResolveInput{
		SlotIDs:   req.SlotIDs,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, translateResolveError(err)
	}

	// 5. Código gerado uma única vez; nunca muda depois
	code := uc.generateCode()

	var (
		created         *domain.Proposal
		bookingsCreated int64
	)

	// 6. Proposta + reservas materializadas, atômicos
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		proposal := &domain.Proposal{
			CompanyID:    req.CompanyID,
			ClientID:     req.ClientID,
			Code:         code,
			PeriodType:   period.Type,
			StartDate:    period.StartDate,
			EndDate:      period.EndDate,
			SlotIDs:      period.SlotIDs,
			BillboardIDs: req.BillboardIDs,
			Status:       domain.ProposalEmAndamento,
			Financials:   req.Financials.toDomain(),
			PaymentTerms: req.PaymentTerms,
		}

		created, err = uc.proposalRepo.Create(txCtx, proposal)
		if err != nil {
			uc.logger.Error("CreateProposal: insert proposal failed: %v", err)
			return fmt.Errorf("%w: insert proposal failed: %v", ErrInternal, err)
		}

		bookings := buildBookings(created, period)
		bookingsCreated, err = uc.bookingRepo.InsertMany(txCtx, bookings)
		if err != nil {
			uc.logger.Error("CreateProposal: insert bookings failed for code=%s: %v", code, err)
			return fmt.Errorf("%w: insert bookings failed: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateProposal: created proposal id=%d code=%s with %d bookings",
		created.ID, created.Code, bookingsCreated)

	// 7. Notificação fire-and-forget, já fora da transação
	uc.notifier.Enqueue(notifier.Event{
		CompanyID: created.CompanyID,
		Type:      notifier.EventProposalCreated,
		Payload: map[string]interface{}{
			"proposalId":   created.ID,
			"proposalCode": created.Code,
			"clientId":     created.ClientID,
			"billboardIds": created.BillboardIDs,
			"startDate":    created.StartDate,
			"endDate":      created.EndDate,
		},
	})

	return &Response{
		Proposal:        proposalmodels.FromDomainProposal(created),
		BookingsCreated: bookingsCreated,
	}, nil
}

// generateCode gera o código da proposta: data do dia + fragmento de uuid.
// Legível para o comercial, único o bastante para correlação.
func (uc *UseCase) generateCode() string {
	now := uc.timeProvider.Now()
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("PROP-%s-%s", now.Format("20060102"), fragment)
}

// buildBookings monta uma reserva ativa por outdoor do pacote,
// todas sob o período da proposta
func buildBookings(p *domain.Proposal, period domain.Period) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(p.BillboardIDs))
	for _, billboardID := range p.BillboardIDs {
		bookings = append(bookings, &domain.Booking{
			BillboardID:  billboardID,
			ClientID:     p.ClientID,
			CompanyID:    p.CompanyID,
			PeriodType:   period.Type,
			StartDate:    period.StartDate,
			EndDate:      period.EndDate,
			SlotIDs:      period.SlotIDs,
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
