package proposal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/psqlbuilder"
)

// Código de unique_violation do PostgreSQL, usado para detectar colisão
// do proposal_code (índice único).
const pqUniqueViolation = "23505"

var proposalColumns = []string{
	"id",
	"company_id",
	"client_id",
	"proposal_code",
	"period_type",
	"start_date",
	"end_date",
	"slot_ids",
	"billboard_ids",
	"status",
	"total_value",
	"discount_value",
	"installment_count",
	"payment_terms",
	"created_at",
	"updated_at",
}

// Repository repositório de propostas comerciais
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de propostas
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere uma proposta
func (r *Repository) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("proposals").
		Columns(
			"company_id",
			"client_id",
			"proposal_code",
			"period_type",
			"start_date",
			"end_date",
			"slot_ids",
			"billboard_ids",
			"status",
			"total_value",
			"discount_value",
			"installment_count",
			"payment_terms",
		).
		Values(
			p.CompanyID,
			p.ClientID,
			p.Code,
			p.PeriodType,
			p.StartDate,
			p.EndDate,
			pq.Array(p.SlotIDs),
			pq.Array(p.BillboardIDs),
			p.Status,
			p.Financials.TotalValue,
			p.Financials.DiscountValue,
			p.Financials.InstallmentCount,
			p.PaymentTerms,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID busca uma proposta pelo ID, no escopo da empresa
func (r *Repository) GetByID(ctx context.Context, id, companyID int64) (*domain.Proposal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(proposalColumns...).
		From("proposals").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanProposal(row)
	if err == sql.ErrNoRows {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan proposal: %v", ErrScanRow, err)
	}

	return p, nil
}

// ExistsByCode verifica se existe proposta com o código informado.
// Usado pela limpeza de reservas órfãs.
func (r *Repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("proposals").
		Where(squirrel.Eq{"proposal_code": code}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListByStatuses lista propostas pelos status informados
func (r *Repository) ListByStatuses(ctx context.Context, statuses []domain.ProposalStatus) ([]*domain.Proposal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(proposalColumns...).
		From("proposals").
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatuses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatuses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProposals(rows)
}

// Update persiste os campos mutáveis da proposta.
// O código e a empresa nunca mudam; o allow-list é garantido no usecase.
func (r *Repository) Update(ctx context.Context, p *domain.Proposal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("proposals").
		Set("client_id", p.ClientID).
		Set("period_type", p.PeriodType).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("slot_ids", pq.Array(p.SlotIDs)).
		Set("billboard_ids", pq.Array(p.BillboardIDs)).
		Set("total_value", p.Financials.TotalValue).
		Set("discount_value", p.Financials.DiscountValue).
		Set("installment_count", p.Financials.InstallmentCount).
		Set("payment_terms", p.PaymentTerms).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID, "company_id": p.CompanyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProposalNotFound
	}

	return nil
}

// Delete remove a proposta, no escopo da empresa
func (r *Repository) Delete(ctx context.Context, id, companyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("proposals").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProposalNotFound
	}

	return nil
}

// ExpireOverdue marca como vencida toda proposta em andamento cujo
// período terminou antes de now. Um único UPDATE idempotente.
func (r *Repository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("proposals").
		Set("status", domain.ProposalVencida).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.ProposalEmAndamento}).
		Where(squirrel.Lt{"end_date": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOverdue - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOverdue - execute update: %v", ErrExecQuery, err)
	}

	expired, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOverdue - get rows affected: %v", ErrExecQuery, err)
	}

	return expired, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProposal(row rowScanner) (*domain.Proposal, error) {
	var p domain.Proposal
	var slotIDs pq.StringArray
	var billboardIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.ClientID,
		&p.Code,
		&p.PeriodType,
		&p.StartDate,
		&p.EndDate,
		&slotIDs,
		&billboardIDs,
		&p.Status,
		&p.Financials.TotalValue,
		&p.Financials.DiscountValue,
		&p.Financials.InstallmentCount,
		&p.PaymentTerms,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.SlotIDs = slotIDs
	p.BillboardIDs = billboardIDs
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// scanProposals converte o resultado da query em um slice de propostas
func scanProposals(rows *sql.Rows) ([]*domain.Proposal, error) {
	proposals := make([]*domain.Proposal, 0)

	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanProposals - scan row: %v", ErrScanRow, err)
		}
		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProposals - rows error: %v", ErrScanRow, err)
	}

	return proposals, nil
}
