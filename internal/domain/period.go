package domain

import "time"

// PeriodType modelo de período de uma reserva ou proposta
type PeriodType string

const (
	// PeriodBiWeek período ancorado nos slots quinzenais do calendário
	PeriodBiWeek PeriodType = "bi-week"
	// PeriodCustom período com datas livres
	PeriodCustom PeriodType = "custom"
)

// Period período canônico já normalizado.
// Para bi-week, StartDate/EndDate derivam dos slots selecionados
// (min dos inícios, max dos fins) e SlotIDs guarda a seleção ordenada.
type Period struct {
	Type      PeriodType
	StartDate time.Time
	EndDate   time.Time
	SlotIDs   []string
}

// IsValid período bem formado: fim estritamente após o início.
func (p Period) IsValid() bool {
	return !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.After(p.StartDate)
}

// Overlaps teste de sobreposição meio-aberto [start, end).
// Períodos encostados (fim de um == início do outro) NÃO conflitam.
func (p Period) Overlaps(other Period) bool {
	return RangesOverlap(p.StartDate, p.EndDate, other.StartDate, other.EndDate)
}

// RangesOverlap predicado único de sobreposição usado por todo o motor:
// aStart < bEnd && bStart < aEnd, comparação estrita nos dois lados.
// É a mesma semântica da query de conflito no repositório de reservas.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
