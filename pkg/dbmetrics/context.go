package dbmetrics

import "context"

type ctxKey int

const executorKey ctxKey = iota

// WithExecutor injeta o executor transacional no contexto.
// Os repositórios passam a executar suas queries dentro da transação.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey, tx)
}

// GetExecutor retorna o executor da transação ativa no contexto,
// ou o fallback (pool) quando não há transação.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction indica se o contexto carrega uma transação ativa.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(TxExecutor)
	return ok
}
