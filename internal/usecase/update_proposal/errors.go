package update_proposal

import "errors"

var (
	// ErrInvalidInput retornado para entrada inválida
	ErrInvalidInput = errors.New("update_proposal: invalid input data")

	// ErrProposalNotFound retornado quando a proposta não existe na empresa
	ErrProposalNotFound = errors.New("update_proposal: proposal not found")

	// ErrProposalLocked retornado quando a proposta não está mais em andamento
	ErrProposalLocked = errors.New("update_proposal: proposal can no longer be updated")

	// ErrClientNotFound retornado quando o novo cliente não pertence à empresa
	ErrClientNotFound = errors.New("update_proposal: client not found")

	// ErrBillboardNotFound retornado quando algum outdoor não pertence à empresa
	ErrBillboardNotFound = errors.New("update_proposal: billboard not found")

	// ErrSlotNotFound retornado quando algum slot selecionado não existe
	ErrSlotNotFound = errors.New("update_proposal: slot not found")

	// ErrInvalidPeriod retornado para período mal formado
	ErrInvalidPeriod = errors.New("update_proposal: invalid period")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("update_proposal: internal error")
)
