package proposals

import "errors"

var (
	// ErrProposalNotFound retornado quando a proposta não existe
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrInternal retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
