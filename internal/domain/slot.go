package domain

import (
	"fmt"
	"time"
)

// BiWeekSlot janela quinzenal fixa do calendário de uma empresa.
// ID segue o formato "{ano}-{número par com dois dígitos}" (02..52).
// Gerado uma vez por empresa/ano; imutável depois disso.
type BiWeekSlot struct {
	ID        string
	CompanyID int64
	Year      int
	Number    int
	StartDate time.Time
	EndDate   time.Time
	Active    bool
	CreatedAt time.Time
}

// Contains verifica se a data cai dentro da janela (inclusivo nas pontas)
func (s *BiWeekSlot) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// SlotID monta o identificador "{ano}-{NN}" do slot
func SlotID(year, number int) string {
	return fmt.Sprintf("%d-%02d", year, number)
}
