package billboard

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/psqlbuilder"
)

// Repository superfície de leitura sobre outdoors.
// O cadastro de outdoors vive fora deste motor; aqui só validamos
// existência para criação de reservas/propostas e para a reconciliação.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de outdoors
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists verifica se o outdoor existe e pertence à empresa
func (r *Repository) Exists(ctx context.Context, id, companyID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("billboards").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: Exists - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ExistingIDs devolve, entre os IDs informados, quais existem na empresa.
// O chamador compara com a entrada para apontar os ausentes.
func (r *Repository) ExistingIDs(ctx context.Context, companyID int64, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("billboards").
		Where(squirrel.Eq{"company_id": companyID, "id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ExistingIDs - scan row: %v", ErrScanRow, err)
		}
		existing[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - rows error: %v", ErrScanRow, err)
	}

	return existing, nil
}
