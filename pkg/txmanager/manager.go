package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
)

// Códigos de erro do PostgreSQL que justificam retry em nível serializable.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// maxSerializableRetries tentativas antes de desistir de uma transação serializable.
const maxSerializableRetries = 3

// ErrTransaction falha de infraestrutura ao abrir/confirmar a transação.
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner abre transações. Satisfeita por *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager executa funções dentro de transações, injetando o
// executor no contexto para os repositórios.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager cria o gerenciador de transações.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do executa fn em uma transação read-committed.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable executa fn em uma transação serializable, com retry
// automático em falhas de serialização (40001) e deadlock (40P01).
// É o modo exigido pelo check-then-insert de reservas.
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

// isRetryable verifica se o erro é uma falha transitória de serialização
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure || string(pqErr.Code) == pqDeadlockDetected
	}
	return false
}
