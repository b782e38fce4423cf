package biweek

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"company_id",
	"year",
	"slot_number",
	"start_date",
	"end_date",
	"active",
	"created_at",
}

// Repository repositório do calendário quinzenal
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de slots quinzenais
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertMany insere os slots ignorando os que já existem
// (ON CONFLICT DO NOTHING na chave empresa+id). Reinvocar a geração de um
// ano já gerado não cria duplicatas nem altera os slots existentes.
// Retorna quantos slots foram de fato inseridos.
func (r *Repository) UpsertMany(ctx context.Context, slots []*domain.BiWeekSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("biweek_slots").
		Columns(
			"id",
			"company_id",
			"year",
			"slot_number",
			"start_date",
			"end_date",
			"active",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.ID,
			s.CompanyID,
			s.Year,
			s.Number,
			s.StartDate,
			s.EndDate,
			s.Active,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (company_id, id) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpsertMany - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpsertMany - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpsertMany - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// FindByIDs busca os slots pelos IDs no escopo da empresa.
// A ordenação e a detecção de IDs ausentes ficam com o chamador.
func (r *Repository) FindByIDs(ctx context.Context, companyID int64, ids []string) ([]*domain.BiWeekSlot, error) {
	if len(ids) == 0 {
		return []*domain.BiWeekSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("biweek_slots").
		Where(squirrel.Eq{"company_id": companyID, "id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// FindByDate retorna o slot ativo que contém a data (pontas inclusivas)
func (r *Repository) FindByDate(ctx context.Context, companyID int64, date time.Time) (*domain.BiWeekSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("biweek_slots").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	slot, err := scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// CountByYear conta os slots de um ano da empresa
func (r *Repository) CountByYear(ctx context.Context, companyID int64, year int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("biweek_slots").
		Where(squirrel.Eq{"company_id": companyID, "year": year}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByYear - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByYear - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.BiWeekSlot, error) {
	var s domain.BiWeekSlot
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.CompanyID,
		&s.Year,
		&s.Number,
		&s.StartDate,
		&s.EndDate,
		&s.Active,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.BiWeekSlot, error) {
	slots := make([]*domain.BiWeekSlot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
