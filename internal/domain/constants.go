package domain

import "time"

// Calendário quinzenal
const (
	// SlotsPerYear quantidade fixa de slots por empresa/ano
	SlotsPerYear = 26
	// SlotLengthDays duração de cada slot em dias
	SlotLengthDays = 14
)

// SlotEndOffset deslocamento do fim do slot em relação ao início:
// 14 dias menos 1ms (13d 23:59:59.999), mantendo slots consecutivos
// sem sobreposição.
const SlotEndOffset = SlotLengthDays*24*time.Hour - time.Millisecond

// Formatos de data aceitos pela API
const (
	DateFormat = "2006-01-02"
)

// Limites de validação de negócio
const (
	MinProposalBillboards = 1
	MaxProposalBillboards = 200
	MaxPaymentTermsLength = 500
)
