package client

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/psqlbuilder"
)

// Repository superfície de leitura sobre clientes.
// O CRUD de clientes vive em outro módulo; o motor de reservas só precisa
// checar existência e resolver nomes para as respostas de conflito.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de clientes
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists verifica se o cliente existe e pertence à empresa
func (r *Repository) Exists(ctx context.Context, id, companyID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("clients").
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

// NamesByIDs resolve nomes de clientes em lote.
// IDs inexistentes simplesmente não aparecem no mapa.
func (r *Repository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("clients").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: NamesByIDs - scan row: %v", ErrScanRow, err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - rows error: %v", ErrScanRow, err)
	}

	return names, nil
}
