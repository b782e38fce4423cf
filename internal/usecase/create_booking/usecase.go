package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

// UseCase criação de reserva manual com garantia de não-sobreposição.
type UseCase struct {
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	billboardRepo BillboardRepository
	resolver      PeriodResolver
	txManager     TransactionManager
	notifier      Notifier
	logger        Logger
}

// NewUseCase cria o usecase de criação de reserva
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	billboardRepo BillboardRepository,
	resolver PeriodResolver,
	txManager TransactionManager,
	n Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		clientRepo:    clientRepo,
		billboardRepo: billboardRepo,
		resolver:      resolver,
		txManager:     txManager,
		notifier:      n,
		logger:        logger,
	}
}

// Execute cria a reserva.
// O par checagem-de-sobreposição + insert roda em transação serializable:
// duas criações concorrentes para o mesmo outdoor com janelas sobrepostas
// nunca têm ambas sucesso (uma falha na serialização e é refeita, ou
// enxerga a reserva da outra e conflita).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: billboard=%d client=%d company=%d",
		req.BillboardID, req.ClientID, req.CompanyID)

	// 1. Validação de forma
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Outdoor pertence à empresa
	exists, err := uc.billboardRepo.Exists(ctx, req.BillboardID, req.CompanyID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check billboard id=%d: %v", req.BillboardID, err)
		return nil, fmt.Errorf("%w: failed to check billboard: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateBooking: billboard id=%d not found in company=%d", req.BillboardID, req.CompanyID)
		return nil, ErrBillboardNotFound
	}

	// 3. Cliente pertence à empresa
	exists, err = uc.clientRepo.Exists(ctx, req.ClientID, req.CompanyID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to check client: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateBooking: client id=%d not found in company=%d", req.ClientID, req.CompanyID)
		return nil, ErrClientNotFound
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

	var result *domain.Booking

	// 5. Checagem de sobreposição + insert, atômicos por outdoor
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Reservas ativas sobrepostas (FOR UPDATE dentro da transação)
		conflicts, err := uc.bookingRepo.FindOverlapping(txCtx, req.BillboardID, req.CompanyID,
			period.StartDate, period.EndDate, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: %d conflicting bookings for billboard=%d",
				len(conflicts), req.BillboardID)
			return &ConflictError{Conflicts: conflicts}
		}

		// 5.2. Insere a reserva
		booking := &domain.Booking{
			BillboardID: req.BillboardID,
			ClientID:    req.ClientID,
			CompanyID:   req.CompanyID,
			PeriodType:  period.Type,
			StartDate:   period.StartDate,
			EndDate:     period.EndDate,
			SlotIDs:     period.SlotIDs,
			Status:      domain.StatusAtivo,
			Origin:      domain.OriginManual,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: insert failed: %v", err)
			return fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d billboard=%d [%s, %s)",
		result.ID, result.BillboardID,
		result.StartDate.Format(domain.DateFormat), result.EndDate.Format(domain.DateFormat))

	// 6. Notificação fire-and-forget, já fora da transação
	uc.notifier.Enqueue(notifier.Event{
		CompanyID: result.CompanyID,
		Type:      notifier.EventBookingCreated,
		Payload: map[string]interface{}{
			"bookingId":   result.ID,
			"billboardId": result.BillboardID,
			"clientId":    result.ClientID,
			"startDate":   result.StartDate,
			"endDate":     result.EndDate,
		},
	})

	return fromDomain(result), nil
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
