package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
)

// Variante do txmanager para *sql.DB puro, usada quando as métricas
// estão desabilitadas e o pool não é envolvido pelo dbmetrics.DB.

const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"

	maxSerializableRetries = 3
)

// ErrTransaction falha de infraestrutura ao abrir/confirmar a transação.
var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager executa funções dentro de transações do *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager cria o gerenciador de transações.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do executa fn em uma transação read-committed.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable executa fn em uma transação serializable com retry
// em falhas de serialização.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return fmt.Errorf("%w: serializable retries exhausted: %v", ErrTransaction, err)
}

// DoReadOnly executa fn em uma transação somente leitura.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	// *sql.Tx satisfaz dbmetrics.TxExecutor
	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure || string(pqErr.Code) == pqDeadlockDetected
	}
	return false
}
