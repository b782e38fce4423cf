package periods

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	biweekRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/biweek"
)

// ResolveInput entrada bruta de período: ou uma seleção de slots
// quinzenais, ou um intervalo de datas livre. Exatamente uma das formas.
type ResolveInput struct {
	SlotIDs   []string
	StartDate *time.Time
	EndDate   *time.Time
}

// Service resolve períodos e mantém o calendário quinzenal.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService cria o serviço de períodos
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Resolve normaliza a entrada bruta em um Period canônico.
// Para slots: startDate = min(início), endDate = max(fim) da seleção.
// Para intervalo livre: exige endDate estritamente após startDate.
func (s *Service) Resolve(ctx context.Context, companyID int64, input ResolveInput) (domain.Period, error) {
	hasSlots := len(input.SlotIDs) > 0
	hasRange := input.StartDate != nil || input.EndDate != nil

	if hasSlots && hasRange {
		return domain.Period{}, fmt.Errorf("%w: slotIds and explicit range are mutually exclusive", ErrInvalidPeriod)
	}

	if hasSlots {
		return s.resolveFromSlots(ctx, companyID, input.SlotIDs)
	}

	if input.StartDate == nil || input.EndDate == nil {
		return domain.Period{}, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidPeriod)
	}
	if !input.EndDate.After(*input.StartDate) {
		return domain.Period{}, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidPeriod)
	}

	return domain.Period{
		Type:      domain.PeriodCustom,
		StartDate: *input.StartDate,
		EndDate:   *input.EndDate,
		SlotIDs:   []string{},
	}, nil
}

func (s *Service) resolveFromSlots(ctx context.Context, companyID int64, slotIDs []string) (domain.Period, error) {
	slots, err := s.FindByIDs(ctx, companyID, slotIDs)
	if err != nil {
		return domain.Period{}, err
	}

	start := slots[0].StartDate
	end := slots[0].EndDate
	for _, slot := range slots[1:] {
		if slot.StartDate.Before(start) {
			start = slot.StartDate
		}
		if slot.EndDate.After(end) {
			end = slot.EndDate
		}
	}

	ids := make([]string, len(slots))
	for i, slot := range slots {
		ids[i] = slot.ID
	}

	return domain.Period{
		Type:      domain.PeriodBiWeek,
		StartDate: start,
		EndDate:   end,
		SlotIDs:   ids,
	}, nil
}

// FindByIDs resolve os slots na ordem pedida, falhando se algum faltar.
func (s *Service) FindByIDs(ctx context.Context, companyID int64, ids []string) ([]*domain.BiWeekSlot, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty slot selection", ErrInvalidPeriod)
	}

	found, err := s.slotRepo.FindByIDs(ctx, companyID, ids)
	if err != nil {
		s.logger.Error("FindByIDs: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: FindByIDs - repository error: %v", ErrInternal, err)
	}

	byID := make(map[string]*domain.BiWeekSlot, len(found))
	for _, slot := range found {
		byID[slot.ID] = slot
	}

	ordered := make([]*domain.BiWeekSlot, 0, len(ids))
	missing := make([]string, 0)
	for _, id := range ids {
		slot, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, slot)
	}

	if len(missing) > 0 {
		s.logger.Warn("FindByIDs: missing slots for company=%d: %s", companyID, strings.Join(missing, ","))
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, strings.Join(missing, ","))
	}

	return ordered, nil
}

// FindByDate retorna o slot ativo que contém a data.
func (s *Service) FindByDate(ctx context.Context, companyID int64, date time.Time) (*domain.BiWeekSlot, error) {
	slot, err := s.slotRepo.FindByDate(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, biweekRepo.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: no slot contains %s", ErrSlotNotFound, date.Format(domain.DateFormat))
		}
		s.logger.Error("FindByDate: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: FindByDate - repository error: %v", ErrInternal, err)
	}
	return slot, nil
}

// GenerateYear gera os 26 slots quinzenais da empresa para o ano.
// anchor nil usa 1º de janeiro 00:00 UTC. O slot i cobre
// [anchor + i*14d, anchor + i*14d + 13d 23:59:59.999]; o ID é
// "{ano}-{(i+1)*2}" com zero à esquerda (02..52).
// A operação é upsert: reinvocar para um ano já gerado não duplica.
func (s *Service) GenerateYear(ctx context.Context, companyID int64, year int, anchor *time.Time) (created, total int64, err error) {
	if year < 2000 || year > 2200 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	base := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if anchor != nil {
		base = anchor.UTC()
	}

	slots := make([]*domain.BiWeekSlot, 0, domain.SlotsPerYear)
	for i := 0; i < domain.SlotsPerYear; i++ {
		start := base.AddDate(0, 0, i*domain.SlotLengthDays)
		number := (i + 1) * 2

		slots = append(slots, &domain.BiWeekSlot{
			ID:        domain.SlotID(year, number),
			CompanyID: companyID,
			Year:      year,
			Number:    number,
			StartDate: start,
			EndDate:   start.Add(domain.SlotEndOffset),
			Active:    true,
		})
	}

	created, err = s.slotRepo.UpsertMany(ctx, slots)
	if err != nil {
		s.logger.Error("GenerateYear: upsert failed for company=%d year=%d: %v", companyID, year, err)
		return 0, 0, fmt.Errorf("%w: GenerateYear - repository error: %v", ErrInternal, err)
	}

	total, err = s.slotRepo.CountByYear(ctx, companyID, year)
	if err != nil {
		s.logger.Error("GenerateYear: count failed for company=%d year=%d: %v", companyID, year, err)
		return 0, 0, fmt.Errorf("%w: GenerateYear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateYear: company=%d year=%d created=%d total=%d", companyID, year, created, total)
	return created, total, nil
}
