package booking

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

var bookingColumns = []string{
	"id",
	"billboard_id",
	"client_id",
	"company_id",
	"period_type",
	"start_date",
	"end_date",
	"slot_ids",
	"status",
	"origin",
	"proposal_code",
	"created_at",
	"updated_at",
}

// Repository repositório de reservas de outdoor
type Repository struct {
	db DBExecutor
}

// NewRepository cria o repositório de reservas
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere uma reserva.
// Se o contexto carrega uma transação ativa (via context.Value), usa a
// transação; é assim que o check de disponibilidade e o insert ficam
// atômicos no fluxo de criação.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"billboard_id",
			"client_id",
			"company_id",
			"period_type",
			"start_date",
			"end_date",
			"slot_ids",
			"status",
			"origin",
			"proposal_code",
		).
		Values(
			booking.BillboardID,
			booking.ClientID,
			booking.CompanyID,
			booking.PeriodType,
			booking.StartDate,
			booking.EndDate,
			pq.Array(booking.SlotIDs),
			booking.Status,
			booking.Origin,
			booking.ProposalCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// InsertMany insere várias reservas de uma vez (materialização de proposta).
func (r *Repository) InsertMany(ctx context.Context, bookings []*domain.Booking) (int64, error) {
	if len(bookings) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("bookings").
		Columns(
			"billboard_id",
			"client_id",
			"company_id",
			"period_type",
			"start_date",
			"end_date",
			"slot_ids",
			"status",
			"origin",
			"proposal_code",
		)

	for _, b := range bookings {
		insertBuilder = insertBuilder.Values(
			b.BillboardID,
			b.ClientID,
			b.CompanyID,
			b.PeriodType,
			b.StartDate,
			b.EndDate,
			pq.Array(b.SlotIDs),
			b.Status,
			b.Origin,
			b.ProposalCode,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMany - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMany - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMany - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID busca uma reserva pelo ID, sempre no escopo da empresa
func (r *Repository) GetByID(ctx context.Context, id, companyID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindOverlapping busca reservas ATIVAS do outdoor que sobrepõem o
// intervalo meio-aberto [start, end): existing.start < end AND
// start < existing.end. Reservas encostadas não retornam.
// Dentro de uma transação, adiciona FOR UPDATE para travar as linhas
// conflitantes até o commit.
func (r *Repository) FindOverlapping(ctx context.Context, billboardID, companyID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"billboard_id": billboardID,
			"company_id":   companyID,
			"status":       domain.StatusAtivo,
		}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		OrderBy("start_date ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByProposalCode lista todas as reservas correlacionadas a uma proposta
func (r *Repository) ListByProposalCode(ctx context.Context, proposalCode string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		OrderBy("billboard_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProposalCode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProposalCode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountByProposalCode conta as reservas correlacionadas a uma proposta
func (r *Repository) CountByProposalCode(ctx context.Context, proposalCode string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByProposalCode - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByProposalCode - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DistinctProposalCodes retorna os códigos de proposta distintos presentes
// em reservas de origem proposal. Usado pela limpeza de reservas órfãs.
func (r *Repository) DistinctProposalCodes(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT proposal_code").
		From("bookings").
		Where(squirrel.Eq{"origin": domain.OriginProposal}).
		Where(squirrel.NotEq{"proposal_code": nil}).
		OrderBy("proposal_code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DistinctProposalCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctProposalCodes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("%w: DistinctProposalCodes - scan code: %v", ErrScanRow, err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DistinctProposalCodes - rows error: %v", ErrScanRow, err)
	}

	return codes, nil
}

// Delete remove fisicamente a reserva, no escopo da empresa
func (r *Repository) Delete(ctx context.Context, id, companyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByProposalCode remove todas as reservas de uma proposta (cascata)
func (r *Repository) DeleteByProposalCode(ctx context.Context, proposalCode string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCode - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCode - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCode - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// DeleteByProposalCodeAndBillboards remove as reservas da proposta para os
// outdoors informados. Toda mutação em lote fica no escopo do proposal_code
// para nunca atingir reservas de outra proposta.
func (r *Repository) DeleteByProposalCodeAndBillboards(ctx context.Context, proposalCode string, billboardIDs []int64) (int64, error) {
	if len(billboardIDs) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		Where(squirrel.Eq{"billboard_id": billboardIDs}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCodeAndBillboards - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCodeAndBillboards - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProposalCodeAndBillboards - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// UpdatePeriodByProposalCode aplica o período em TODAS as reservas da
// proposta, sem diff por reserva (equivalente ao bulk update da origem).
func (r *Repository) UpdatePeriodByProposalCode(ctx context.Context, proposalCode string, period domain.Period) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("period_type", period.Type).
		Set("start_date", period.StartDate).
		Set("end_date", period.EndDate).
		Set("slot_ids", pq.Array(period.SlotIDs)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdatePeriodByProposalCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdatePeriodByProposalCode - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdatePeriodByProposalCode - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateOwnerByProposalCode corrige cliente/empresa em todas as reservas
// da proposta (regra de titularidade da reconciliação).
func (r *Repository) UpdateOwnerByProposalCode(ctx context.Context, proposalCode string, clientID, companyID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("client_id", clientID).
		Set("company_id", companyID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"proposal_code": proposalCode}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOwnerByProposalCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOwnerByProposalCode - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOwnerByProposalCode - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// rowScanner abstrai *sql.Row e *sql.Rows para o scan compartilhado
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var slotIDs pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BillboardID,
		&b.ClientID,
		&b.CompanyID,
		&b.PeriodType,
		&b.StartDate,
		&b.EndDate,
		&slotIDs,
		&b.Status,
		&b.Origin,
		&b.ProposalCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SlotIDs = slotIDs
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings converte o resultado da query em um slice de reservas
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
