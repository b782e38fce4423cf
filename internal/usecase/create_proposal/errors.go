package create_proposal

import "errors"

var (
	// ErrInvalidInput retornado para entrada inválida
	ErrInvalidInput = errors.New("create_proposal: invalid input data")

	// ErrClientNotFound retornado quando o cliente não pertence à empresa
	ErrClientNotFound = errors.New("create_proposal: client not found")

	// ErrBillboardNotFound retornado quando algum outdoor não pertence à empresa
	ErrBillboardNotFound = errors.New("create_proposal: billboard not found")

	// ErrSlotNotFound retornado quando algum slot selecionado não existe
	ErrSlotNotFound = errors.New("create_proposal: slot not found")

	// ErrInvalidPeriod retornado para período mal formado
	ErrInvalidPeriod = errors.New("create_proposal: invalid period")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("create_proposal: internal error")
)
