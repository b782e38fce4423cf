package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/metrics"
)

// DBExecutor superfície mínima de execução usada pelos repositórios.
// Satisfeita por *sql.DB, *sql.Tx, *DB e *Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor executor dentro de uma transação aberta.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB envolve *sql.DB registrando a duração de cada query nas métricas.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap cria o wrapper de métricas sobre o pool de conexões.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault cria o wrapper e inicia a coleta periódica das
// estatísticas do pool. A goroutine encerra quando stopCh for fechado.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

const poolStatsInterval = 15 * time.Second

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.metrics.SetDBPoolStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// ExecContext executa a query registrando a duração
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return res, err
}

// QueryContext executa a query registrando a duração
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return rows, err
}

// QueryRowContext executa a query registrando a duração
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return row
}

// BeginTx abre uma transação cujas queries também são medidas.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// Tx transação com medição de queries.
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// ExecContext executa a query na transação registrando a duração
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return res, err
}

// QueryContext executa a query na transação registrando a duração
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return rows, err
}

// QueryRowContext executa a query na transação registrando a duração
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return row
}

// Commit confirma a transação
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback desfaz a transação
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation extrai o verbo SQL (select, insert, update, delete) da query
func queryOperation(query string) string {
	fields := strings.Fields(strings.TrimSpace(query))
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
