package billboard

import "errors"

var (
	// ErrBuildQuery retornado ao falhar a montagem da query SQL
	ErrBuildQuery = errors.New("billboard.repository: failed to build query")

	// ErrExecQuery retornado ao falhar a execução da query SQL
	ErrExecQuery = errors.New("billboard.repository: failed to execute query")

	// ErrScanRow retornado ao falhar a leitura do resultado da query
	ErrScanRow = errors.New("billboard.repository: failed to scan row")
)
