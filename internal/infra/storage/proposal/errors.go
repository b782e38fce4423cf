package proposal

import "errors"

var (
	// ErrProposalNotFound retornado quando a proposta não existe
	ErrProposalNotFound = errors.New("proposal.repository: proposal not found")

	// ErrDuplicateCode retornado quando o código da proposta já existe
	ErrDuplicateCode = errors.New("proposal.repository: duplicate proposal code")

	// ErrBuildQuery retornado ao falhar a montagem da query SQL
	ErrBuildQuery = errors.New("proposal.repository: failed to build query")

	// ErrExecQuery retornado ao falhar a execução da query SQL
	ErrExecQuery = errors.New("proposal.repository: failed to execute query")

	// ErrScanRow retornado ao falhar a leitura do resultado da query
	ErrScanRow = errors.New("proposal.repository: failed to scan row")
)
