package periods

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	biweekRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/biweek"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeSlotRepo repositório em memória, chaveado por empresa+id
type fakeSlotRepo struct {
	slots map[string]*domain.BiWeekSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*domain.BiWeekSlot)}
}

func (f *fakeSlotRepo) UpsertMany(_ context.Context, slots []*domain.BiWeekSlot) (int64, error) {
	var created int64
	for _, s := range slots {
		if _, ok := f.slots[s.ID]; ok {
			continue
		}
		f.slots[s.ID] = s
		created++
	}
	return created, nil
}

func (f *fakeSlotRepo) FindByIDs(_ context.Context, _ int64, ids []string) ([]*domain.BiWeekSlot, error) {
	out := make([]*domain.BiWeekSlot, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.slots[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) FindByDate(_ context.Context, _ int64, date time.Time) (*domain.BiWeekSlot, error) {
	for _, s := range f.slots {
		if s.Contains(date) {
			return s, nil
		}
	}
	return nil, biweekRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) CountByYear(_ context.Context, _ int64, year int) (int64, error) {
	var total int64
	for _, s := range f.slots {
		if s.Year == year {
			total++
		}
	}
	return total, nil
}

func TestGenerateYear(t *testing.T) {
	t.Parallel()

	repo := newFakeSlotRepo()
	svc := NewService(repo, nopLogger{})

	created, total, err := svc.GenerateYear(context.Background(), 1, 2026, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.SlotsPerYear), created)
	assert.Equal(t, int64(domain.SlotsPerYear), total)

	// IDs pares de 02 a 52
	first, ok := repo.slots["2026-02"]
	require.True(t, ok)
	last, ok := repo.slots["2026-52"]
	require.True(t, ok)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), first.StartDate)
	assert.Equal(t, 2, first.Number)
	assert.Equal(t, 52, last.Number)

	// quinzenas contíguas: o próximo slot começa exatamente 14 dias depois
	second := repo.slots["2026-04"]
	require.NotNil(t, second)
	assert.Equal(t, first.StartDate.AddDate(0, 0, domain.SlotLengthDays), second.StartDate)
	assert.True(t, first.EndDate.Before(second.StartDate))
}

func TestGenerateYearIdempotent(t *testing.T) {
	t.Parallel()

	repo := newFakeSlotRepo()
	svc := NewService(repo, nopLogger{})

	_, _, err := svc.GenerateYear(context.Background(), 1, 2026, nil)
	require.NoError(t, err)

	// segunda geração do mesmo ano não cria nada
	created, total, err := svc.GenerateYear(context.Background(), 1, 2026, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), created)
	assert.Equal(t, int64(domain.SlotsPerYear), total)
}

func TestGenerateYearInvalidYear(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSlotRepo(), nopLogger{})

	_, _, err := svc.GenerateYear(context.Background(), 1, 1980, nil)
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, _, err = svc.GenerateYear(context.Background(), 1, 2500, nil)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestResolveFromSlots(t *testing.T) {
	t.Parallel()

	repo := newFakeSlotRepo()
	svc := NewService(repo, nopLogger{})

	_, _, err := svc.GenerateYear(context.Background(), 1, 2026, nil)
	require.NoError(t, err)

	// seleção de duas quinzenas não adjacentes: início = min, fim = max
	period, err := svc.Resolve(context.Background(), 1, ResolveInput{
		SlotIDs: []string{"2026-02", "2026-06"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodBiWeek, period.Type)
	assert.Equal(t, repo.slots["2026-02"].StartDate, period.StartDate)
	assert.Equal(t, repo.slots["2026-06"].EndDate, period.EndDate)
	assert.Equal(t, []string{"2026-02", "2026-06"}, period.SlotIDs)
}

func TestResolveMissingSlot(t *testing.T) {
	t.Parallel()

	repo := newFakeSlotRepo()
	svc := NewService(repo, nopLogger{})

	_, _, err := svc.GenerateYear(context.Background(), 1, 2026, nil)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), 1, ResolveInput{
		SlotIDs: []string{"2026-02", "2027-02"},
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Contains(t, err.Error(), "2027-02")
}

func TestResolveCustomRange(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSlotRepo(), nopLogger{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	period, err := svc.Resolve(context.Background(), 1, ResolveInput{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodCustom, period.Type)
	assert.Equal(t, start, period.StartDate)
	assert.Equal(t, end, period.EndDate)
	assert.Empty(t, period.SlotIDs)
}

func TestResolveRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSlotRepo(), nopLogger{})
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	// as duas formas ao mesmo tempo
	_, err := svc.Resolve(context.Background(), 1, ResolveInput{
		SlotIDs:   []string{"2026-02"},
		StartDate: &start,
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// intervalo incompleto
	_, err = svc.Resolve(context.Background(), 1, ResolveInput{StartDate: &start})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// fim antes do início
	_, err = svc.Resolve(context.Background(), 1, ResolveInput{StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// fim igual ao início (intervalo semiaberto vazio)
	_, err = svc.Resolve(context.Background(), 1, ResolveInput{StartDate: &start, EndDate: &start})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// nenhuma das formas
	_, err = svc.Resolve(context.Background(), 1, ResolveInput{})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
