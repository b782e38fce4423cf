package get_biweek_slot

import (
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

// SlotResponse representação de uma quinzena do calendário
type SlotResponse struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	Number    int       `json:"number"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Active    bool      `json:"active"`
}

// FromDomainSlot converte a quinzena de domínio para o modelo de resposta
func FromDomainSlot(s *domain.BiWeekSlot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		Year:      s.Year,
		Number:    s.Number,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Active:    s.Active,
	}
}
