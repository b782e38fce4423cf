package delete_proposal

import "errors"

var (
	// ErrInvalidInput retornado para entrada inválida
	ErrInvalidInput = errors.New("delete_proposal: invalid input data")

	// ErrProposalNotFound retornado quando a proposta não existe na empresa
	ErrProposalNotFound = errors.New("delete_proposal: proposal not found")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("delete_proposal: internal error")
)
