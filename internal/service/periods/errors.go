package periods

import "errors"

var (
	// ErrInvalidPeriod retornado para entrada de período mal formada
	// (datas ausentes, fim antes do início, nenhuma forma informada)
	ErrInvalidPeriod = errors.New("periods: invalid period input")

	// ErrSlotNotFound retornado quando algum slot selecionado não existe
	ErrSlotNotFound = errors.New("periods: slot not found")

	// ErrInvalidYear retornado para ano fora da faixa aceita na geração
	ErrInvalidYear = errors.New("periods: invalid year")

	// ErrInternal retornado em falhas de infraestrutura
	ErrInternal = errors.New("periods: internal error")
)
