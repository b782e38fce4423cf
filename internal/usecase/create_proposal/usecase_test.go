package create_proposal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProposalRepo struct {
	created *domain.Proposal
}

func (f *fakeProposalRepo) Create(_ context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	created := *p
	created.ID = 42
	f.created = &created
	return &created, nil
}

type fakeBookingRepo struct {
	inserted []*domain.Booking
}

func (f *fakeBookingRepo) InsertMany(_ context.Context, bookings []*domain.Booking) (int64, error) {
	f.inserted = append(f.inserted, bookings...)
	return int64(len(bookings)), nil
}

type fakeClientRepo struct{ exists bool }

func (f *fakeClientRepo) Exists(context.Context, int64, int64) (bool, error) {
	return f.exists, nil
}

type fakeBillboardRepo struct{ existing map[int64]bool }

func (f *fakeBillboardRepo) ExistingIDs(_ context.Context, _ int64, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = f.existing[id]
	}
	return out, nil
}

type fakeResolver struct {
	period domain.Period
	err    error
}

func (f *fakeResolver) Resolve(context.Context, int64, periods.ResolveInput) (domain.Period, error) {
	return f.period, f.err
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct{ events []notifier.Event }

func (f *fakeNotifier) Enqueue(e notifier.Event) { f.events = append(f.events, e) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecuteMaterializesBookings(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{}
	bookingRepo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	n := &fakeNotifier{}

	uc := NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{existing: map[int64]bool{10: true, 20: true, 30: true}},
		&fakeResolver{period: domain.Period{
			Type:      domain.PeriodBiWeek,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 28),
			SlotIDs:   []string{"2026-06", "2026-08"},
		}},
		tx,
		n,
		fixedTime{now: date(2026, 1, 31)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID:    1,
		ClientID:     3,
		BillboardIDs: []int64{10, 20, 30},
		SlotIDs:      []string{"2026-06", "2026-08"},
		Financials:   Financials{TotalValue: 3000, InstallmentCount: 3},
	})
	require.NoError(t, err)

	// uma reserva por outdoor, todas sob o período e o código da proposta
	assert.Equal(t, int64(3), resp.BookingsCreated)
	require.Len(t, bookingRepo.inserted, 3)
	for _, b := range bookingRepo.inserted {
		assert.Equal(t, domain.OriginProposal, b.Origin)
		assert.Equal(t, domain.StatusAtivo, b.Status)
		require.NotNil(t, b.ProposalCode)
		assert.Equal(t, proposalRepo.created.Code, *b.ProposalCode)
		assert.Equal(t, date(2026, 3, 1), b.StartDate)
		assert.Equal(t, date(2026, 3, 28), b.EndDate)
	}

	// código legível, data do dia + fragmento
	assert.True(t, strings.HasPrefix(resp.Proposal.ProposalCode, "PROP-20260131-"))
	assert.Len(t, resp.Proposal.ProposalCode, len("PROP-20260131-")+8)

	// proposta nasce em andamento, tudo dentro de uma transação
	assert.Equal(t, domain.ProposalEmAndamento, proposalRepo.created.Status)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventProposalCreated, n.events[0].Type)
}

func TestExecuteBillboardNotFound(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeProposalRepo{},
		&fakeBookingRepo{},
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{existing: map[int64]bool{10: true}},
		&fakeResolver{},
		&fakeTxManager{},
		&fakeNotifier{},
		fixedTime{now: date(2026, 1, 31)},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID:    1,
		ClientID:     3,
		BillboardIDs: []int64{10, 99},
		SlotIDs:      []string{"2026-06"},
	})
	assert.ErrorIs(t, err, ErrBillboardNotFound)
	assert.Contains(t, err.Error(), "99")
}

func TestExecuteValidation(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeProposalRepo{},
		&fakeBookingRepo{},
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{},
		&fakeResolver{},
		&fakeTxManager{},
		&fakeNotifier{},
		fixedTime{now: date(2026, 1, 31)},
		nopLogger{},
	)

	// sem outdoors
	_, err := uc.Execute(context.Background(), &Request{
		CompanyID: 1,
		ClientID:  3,
		SlotIDs:   []string{"2026-06"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// outdoor duplicado
	_, err = uc.Execute(context.Background(), &Request{
		CompanyID:    1,
		ClientID:     3,
		BillboardIDs: []int64{10, 10},
		SlotIDs:      []string{"2026-06"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// financeiro negativo
	_, err = uc.Execute(context.Background(), &Request{
		CompanyID:    1,
		ClientID:     3,
		BillboardIDs: []int64{10},
		SlotIDs:      []string{"2026-06"},
		Financials:   Financials{TotalValue: -1},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGeneratedCodesAreUnique(t *testing.T) {
	t.Parallel()

	uc := &UseCase{timeProvider: fixedTime{now: date(2026, 1, 31)}}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := uc.generateCode()
		assert.False(t, seen[code], "duplicated code %s", code)
		seen[code] = true
	}
}
