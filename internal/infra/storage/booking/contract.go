package booking

import (
	"context"
	"database/sql"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
)

// Reaproveitamos as interfaces do dbmetrics para acesso ao banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface para abertura de transações
// Suporta *sql.DB e *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
