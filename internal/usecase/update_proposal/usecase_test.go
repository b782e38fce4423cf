package update_proposal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProposalRepo struct {
	proposal *domain.Proposal
	updated  *domain.Proposal
}

func (f *fakeProposalRepo) GetByID(context.Context, int64, int64) (*domain.Proposal, error) {
	p := *f.proposal
	return &p, nil
}

func (f *fakeProposalRepo) Update(_ context.Context, p *domain.Proposal) error {
	f.updated = p
	return nil
}

type fakeBookingRepo struct {
	inserted      []*domain.Booking
	deletedBoards []int64
	periodUpdates []domain.Period
	ownerUpdates  []int64
}

func (f *fakeBookingRepo) InsertMany(_ context.Context, bookings []*domain.Booking) (int64, error) {
	f.inserted = append(f.inserted, bookings...)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) DeleteByProposalCodeAndBillboards(_ context.Context, _ string, ids []int64) (int64, error) {
	f.deletedBoards = append(f.deletedBoards, ids...)
	return int64(len(ids)), nil
}

func (f *fakeBookingRepo) UpdatePeriodByProposalCode(_ context.Context, _ string, period domain.Period) (int64, error) {
	f.periodUpdates = append(f.periodUpdates, period)
	return 2, nil
}

func (f *fakeBookingRepo) UpdateOwnerByProposalCode(_ context.Context, _ string, clientID, _ int64) (int64, error) {
	f.ownerUpdates = append(f.ownerUpdates, clientID)
	return 2, nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct{ events []notifier.Event }

func (f *fakeNotifier) Enqueue(e notifier.Event) { f.events = append(f.events, e) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseProposal() *domain.Proposal {
	return &domain.Proposal{
		ID:           42,
		CompanyID:    1,
		ClientID:     3,
		Code:         "PROP-20260131-AB12CD34",
		PeriodType:   domain.PeriodCustom,
		StartDate:    date(2026, 3, 1),
		EndDate:      date(2026, 3, 15),
		SlotIDs:      []string{},
		BillboardIDs: []int64{10, 20},
		Status:       domain.ProposalEmAndamento,
	}
}

func TestExecuteBillboardDiff(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{proposal: baseProposal()}
	bookingRepo := &fakeBookingRepo{}
	n := &fakeNotifier{}

	uc := NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{existing: map[int64]bool{20: true, 30: true}},
		&fakeResolver{},
		fakeTxManager{},
		n,
		nopLogger{},
	)

	// pacote [10, 20] -> [20, 30]: sai o 10, entra o 30, o 20 não é tocado
	resp, err := uc.Execute(context.Background(), &Request{
		ProposalID:   42,
		CompanyID:    1,
		BillboardIDs: []int64{20, 30},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{10}, bookingRepo.deletedBoards)
	require.Len(t, bookingRepo.inserted, 1)
	assert.Equal(t, int64(30), bookingRepo.inserted[0].BillboardID)
	assert.Equal(t, domain.OriginProposal, bookingRepo.inserted[0].Origin)

	assert.Equal(t, int64(1), resp.BookingsAdded)
	assert.Equal(t, int64(1), resp.BookingsRemoved)

	// a proposta persistida reflete o novo pacote
	require.NotNil(t, proposalRepo.updated)
	assert.Equal(t, []int64{20, 30}, proposalRepo.updated.BillboardIDs)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventProposalUpdated, n.events[0].Type)
}

func TestExecutePeriodCascade(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{proposal: baseProposal()}
	bookingRepo := &fakeBookingRepo{}
	newPeriod := domain.Period{
		Type:      domain.PeriodBiWeek,
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 28),
		SlotIDs:   []string{"2026-08", "2026-10"},
	}

	uc := NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{},
		&fakeResolver{period: newPeriod},
		fakeTxManager{},
		&fakeNotifier{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProposalID: 42,
		CompanyID:  1,
		SlotIDs:    []string{"2026-08", "2026-10"},
	})
	require.NoError(t, err)

	// update em massa pelo código, sem diff por reserva
	require.Len(t, bookingRepo.periodUpdates, 1)
	assert.Equal(t, newPeriod, bookingRepo.periodUpdates[0])
	assert.Empty(t, bookingRepo.inserted)
	assert.Empty(t, bookingRepo.deletedBoards)

	require.NotNil(t, proposalRepo.updated)
	assert.Equal(t, newPeriod.StartDate, proposalRepo.updated.StartDate)
	assert.Equal(t, newPeriod.EndDate, proposalRepo.updated.EndDate)
	assert.Equal(t, newPeriod.SlotIDs, proposalRepo.updated.SlotIDs)
}

func TestExecutePeriodChangeWithAddedBillboards(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{proposal: baseProposal()}
	bookingRepo := &fakeBookingRepo{}
	newPeriod := domain.Period{
		Type:      domain.PeriodCustom,
		StartDate: date(2026, 5, 1),
		EndDate:   date(2026, 5, 20),
		SlotIDs:   []string{},
	}

	uc := NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{existing: map[int64]bool{10: true, 20: true, 30: true}},
		&fakeResolver{period: newPeriod},
		fakeTxManager{},
		&fakeNotifier{},
		nopLogger{},
	)

	start := date(2026, 5, 1)
	end := date(2026, 5, 20)
	_, err := uc.Execute(context.Background(), &Request{
		ProposalID:   42,
		CompanyID:    1,
		StartDate:    &start,
		EndDate:      &end,
		BillboardIDs: []int64{10, 20, 30},
	})
	require.NoError(t, err)

	// o outdoor adicionado no mesmo patch já nasce com o período novo
	require.Len(t, bookingRepo.inserted, 1)
	assert.Equal(t, int64(30), bookingRepo.inserted[0].BillboardID)
	assert.Equal(t, newPeriod.StartDate, bookingRepo.inserted[0].StartDate)
	assert.Equal(t, newPeriod.EndDate, bookingRepo.inserted[0].EndDate)
}

func TestExecuteOwnerCascade(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{proposal: baseProposal()}
	bookingRepo := &fakeBookingRepo{}

	uc := NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{},
		&fakeResolver{},
		fakeTxManager{},
		&fakeNotifier{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProposalID: 42,
		CompanyID:  1,
		ClientID:   ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, bookingRepo.ownerUpdates)
	require.NotNil(t, proposalRepo.updated)
	assert.Equal(t, int64(7), proposalRepo.updated.ClientID)
}

func TestExecuteRefusesLockedProposal(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.ProposalStatus{domain.ProposalConcluida, domain.ProposalVencida} {
		p := baseProposal()
		p.Status = status

		uc := NewUseCase(
			&fakeProposalRepo{proposal: p},
			&fakeBookingRepo{},
			&fakeClientRepo{exists: true},
			&fakeBillboardRepo{},
			&fakeResolver{},
			fakeTxManager{},
			&fakeNotifier{},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			ProposalID: 42,
			CompanyID:  1,
			ClientID:   ptr.Ptr(int64(7)),
		})
		assert.ErrorIs(t, err, ErrProposalLocked, "status %s", status)
	}
}

func TestExecuteEmptyPatch(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeProposalRepo{proposal: baseProposal()},
		&fakeBookingRepo{},
		&fakeClientRepo{exists: true},
		&fakeBillboardRepo{},
		&fakeResolver{},
		fakeTxManager{},
		&fakeNotifier{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ProposalID: 42, CompanyID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
