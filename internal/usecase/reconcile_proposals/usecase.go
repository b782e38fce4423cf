package reconcile_proposals

import (
	"context"
	"fmt"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// UseCase varredura de reconciliação: realinha as reservas materializadas
// às propostas das quais derivam. Propostas e reservas se correlacionam
// apenas pelo código (sem foreign key), então qualquer escrita parcial ou
// interferência externa deixa as duas tabelas divergentes; a varredura é o
// mecanismo que fecha essa lacuna.
type UseCase struct {
	proposalRepo  ProposalRepository
	bookingRepo   BookingRepository
	billboardRepo BillboardRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	metrics       Metrics
	logger        Logger
}

// NewUseCase cria o usecase da varredura; metrics pode ser nil
func NewUseCase(
	proposalRepo ProposalRepository,
	bookingRepo BookingRepository,
	billboardRepo BillboardRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		proposalRepo:  proposalRepo,
		bookingRepo:   bookingRepo,
		billboardRepo: billboardRepo,
		txManager:     txManager,
		timeProvider:  timeProvider,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute roda uma passada completa. Cada proposta é reconciliada na sua
// própria transação: a falha em uma não derruba a varredura, e rodar de
// novo sobre um banco já são é um no-op (fora o expire, que só move o que
// venceu desde a última passada).
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()
	result := &Result{Reports: []*Report{}}

	if uc.metrics != nil {
		uc.metrics.IncReconcileRun()
	}

	// 1. Expira propostas em andamento cujo período já terminou.
	// Propostas vencidas saem do conjunto reconciliável, então isso
	// precisa acontecer antes da listagem.
	expired, err := uc.proposalRepo.ExpireOverdue(ctx, now)
	if err != nil {
		uc.logger.Error("Reconcile: expire pass failed: %v", err)
	} else {
		result.Expired = expired
		if expired > 0 {
			uc.logger.Info("Reconcile: %d proposals expired", expired)
		}
	}

	// 2. Varre as propostas reconciliáveis
	proposals, err := uc.proposalRepo.ListByStatuses(ctx, domain.ReconcilableStatuses)
	if err != nil {
		uc.logger.Error("Reconcile: failed to list proposals: %v", err)
		return nil, fmt.Errorf("%w: failed to list proposals: %v", ErrInternal, err)
	}
	result.ProposalsChecked = int64(len(proposals))

	for _, p := range proposals {
		report, err := uc.reconcileOne(ctx, p)
		if err != nil {
			// falha isolada: loga e segue para a próxima proposta
			uc.logger.Error("Reconcile: proposal id=%d code=%s failed: %v", p.ID, p.Code, err)
			continue
		}
		if report.HadProblem {
			result.Reports = append(result.Reports, report)
		}
	}

	// 3. Reservas órfãs: origem proposta, mas o código não existe mais
	orphans, err := uc.cleanOrphanBookings(ctx)
	if err != nil {
		uc.logger.Error("Reconcile: orphan cleanup failed: %v", err)
	} else {
		result.OrphanBookingsRemoved = orphans
	}

	uc.recordRepairs(result)

	uc.logger.Info("Reconcile: checked=%d problems=%d expired=%d orphansRemoved=%d",
		result.ProposalsChecked, len(result.Reports), result.Expired, result.OrphanBookingsRemoved)

	return result, nil
}

// reconcileOne aplica as três regras sobre uma proposta, numa transação:
//
//   - cardinalidade: exatamente uma reserva ativa por outdoor do pacote;
//     faltantes são recriadas, excedentes e duplicadas apagadas
//   - datas: reservas com período divergente são realinhadas em massa
//   - dono: reservas com cliente ou empresa divergentes idem
//
// As correções em massa só disparam quando há divergência de fato, para a
// passada seguinte sobre o mesmo estado não escrever nada.
func (uc *UseCase) reconcileOne(ctx context.Context, p *domain.Proposal) (*Report, error) {
	report := &Report{ProposalID: p.ID, ProposalCode: p.Code}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.ListByProposalCode(txCtx, p.Code)
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}

		// Reservas ativas agrupadas por outdoor
		byBillboard := make(map[int64][]*domain.Booking)
		for _, b := range bookings {
			if b.IsActive() {
				byBillboard[b.BillboardID] = append(byBillboard[b.BillboardID], b)
			}
		}

		inPackage := make(map[int64]bool, len(p.BillboardIDs))
		for _, id := range p.BillboardIDs {
			inPackage[id] = true
		}

		var missing, toRemove []int64
		for _, id := range p.BillboardIDs {
			switch n := len(byBillboard[id]); {
			case n == 0:
				missing = append(missing, id)
			case n > 1:
				// duplicadas: apaga todas e recria uma única
				toRemove = append(toRemove, id)
				missing = append(missing, id)
			}
		}
		for id := range byBillboard {
			if !inPackage[id] {
				toRemove = append(toRemove, id)
			}
		}

		// Só recria reservas de outdoors que ainda existem; um pacote
		// apontando para outdoor apagado é divergência que reparo nenhum
		// resolve, então apenas sinaliza
		if len(missing) > 0 {
			existing, err := uc.billboardRepo.ExistingIDs(txCtx, p.CompanyID, missing)
			if err != nil {
				return fmt.Errorf("check billboards: %w", err)
			}
			recreate := missing[:0]
			for _, id := range missing {
				if existing[id] {
					recreate = append(recreate, id)
				} else {
					report.Inconsistent = true
					uc.logger.Warn("Reconcile: proposal code=%s references missing billboard id=%d", p.Code, id)
				}
			}
			missing = recreate
		}

		if len(toRemove) > 0 {
			n, err := uc.bookingRepo.DeleteByProposalCodeAndBillboards(txCtx, p.Code, toRemove)
			if err != nil {
				return fmt.Errorf("delete stray bookings: %w", err)
			}
			report.Removed = n
		}

		if len(missing) > 0 {
			n, err := uc.bookingRepo.InsertMany(txCtx, buildBookings(p, missing))
			if err != nil {
				return fmt.Errorf("recreate bookings: %w", err)
			}
			report.Created = n
		}

		// Regra de datas e de dono sobre as reservas que permanecem
		var periodDrift, ownerDrift bool
		for _, b := range bookings {
			if !b.IsActive() || !inPackage[b.BillboardID] {
				continue
			}
			if !periodMatches(b, p) {
				periodDrift = true
			}
			if b.ClientID != p.ClientID || b.CompanyID != p.CompanyID {
				ownerDrift = true
			}
		}

		if periodDrift {
			n, err := uc.bookingRepo.UpdatePeriodByProposalCode(txCtx, p.Code, p.Period())
			if err != nil {
				return fmt.Errorf("realign period: %w", err)
			}
			report.Corrected += n
		}
		if ownerDrift {
			n, err := uc.bookingRepo.UpdateOwnerByProposalCode(txCtx, p.Code, p.ClientID, p.CompanyID)
			if err != nil {
				return fmt.Errorf("realign owner: %w", err)
			}
			report.Corrected += n
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	report.HadProblem = report.Created > 0 || report.Removed > 0 ||
		report.Corrected > 0 || report.Inconsistent

	if report.HadProblem {
		uc.logger.Info("Reconcile: proposal code=%s repaired (created=%d removed=%d corrected=%d inconsistent=%v)",
			p.Code, report.Created, report.Removed, report.Corrected, report.Inconsistent)
	}

	return report, nil
}

// cleanOrphanBookings apaga reservas de origem proposta cujo código não
// corresponde mais a nenhuma proposta
func (uc *UseCase) cleanOrphanBookings(ctx context.Context) (int64, error) {
	codes, err := uc.bookingRepo.DistinctProposalCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list proposal codes: %w", err)
	}

	var removed int64
	for _, code := range codes {
		exists, err := uc.proposalRepo.ExistsByCode(ctx, code)
		if err != nil {
			uc.logger.Error("Reconcile: failed to check proposal code=%s: %v", code, err)
			continue
		}
		if exists {
			continue
		}

		n, err := uc.bookingRepo.DeleteByProposalCode(ctx, code)
		if err != nil {
			uc.logger.Error("Reconcile: failed to delete orphans for code=%s: %v", code, err)
			continue
		}
		uc.logger.Info("Reconcile: removed %d orphan bookings for code=%s", n, code)
		removed += n
	}

	return removed, nil
}

func (uc *UseCase) recordRepairs(result *Result) {
	if uc.metrics == nil {
		return
	}
	var created, removed, corrected int64
	for _, r := range result.Reports {
		created += r.Created
		removed += r.Removed
		corrected += r.Corrected
	}
	uc.metrics.AddReconcileRepairs(RepairCreated, int(created))
	uc.metrics.AddReconcileRepairs(RepairRemoved, int(removed))
	uc.metrics.AddReconcileRepairs(RepairCorrected, int(corrected))
	uc.metrics.AddReconcileRepairs(RepairOrphan, int(result.OrphanBookingsRemoved))
}

// periodMatches compara o período da reserva com o da proposta
func periodMatches(b *domain.Booking, p *domain.Proposal) bool {
	if b.PeriodType != p.PeriodType {
		return false
	}
	if !b.StartDate.Equal(p.StartDate) || !b.EndDate.Equal(p.EndDate) {
		return false
	}
	if len(b.SlotIDs) != len(p.SlotIDs) {
		return false
	}
	for i := range b.SlotIDs {
		if b.SlotIDs[i] != p.SlotIDs[i] {
			return false
		}
	}
	return true
}

// buildBookings monta as reservas recriadas, sob o período da proposta
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
