package biweek

import "errors"

var (
	// ErrSlotNotFound retornado quando o slot quinzenal não existe
	ErrSlotNotFound = errors.New("biweek.repository: slot not found")

	// ErrBuildQuery retornado ao falhar a montagem da query SQL
	ErrBuildQuery = errors.New("biweek.repository: failed to build query")

	// ErrExecQuery retornado ao falhar a execução da query SQL
	ErrExecQuery = errors.New("biweek.repository: failed to execute query")

	// ErrScanRow retornado ao falhar a leitura do resultado da query
	ErrScanRow = errors.New("biweek.repository: failed to scan row")
)
