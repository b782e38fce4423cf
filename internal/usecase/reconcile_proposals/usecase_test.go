package reconcile_proposals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProposalRepo struct {
	proposals []*domain.Proposal
}

func (f *fakeProposalRepo) ListByStatuses(_ context.Context, statuses []domain.ProposalStatus) ([]*domain.Proposal, error) {
	allowed := make(map[domain.ProposalStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	out := make([]*domain.Proposal, 0)
	for _, p := range f.proposals {
		if allowed[p.Status] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, p := range f.proposals {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProposalRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var expired int64
	for _, p := range f.proposals {
		if p.IsExpired(now) {
			p.Status = domain.ProposalVencida
			expired++
		}
	}
	return expired, nil
}

// fakeBookingRepo estado em memória com contador de escritas, para medir
// idempotência da varredura
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
	writes   int
}

func (f *fakeBookingRepo) ListByProposalCode(_ context.Context, code string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.ProposalCode != nil && *b.ProposalCode == code {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) InsertMany(_ context.Context, bookings []*domain.Booking) (int64, error) {
	f.writes++
	for _, b := range bookings {
		f.nextID++
		b.ID = f.nextID
		f.bookings = append(f.bookings, b)
	}
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) DeleteByProposalCode(_ context.Context, code string) (int64, error) {
	f.writes++
	return f.deleteIf(func(b *domain.Booking) bool {
		return b.ProposalCode != nil && *b.ProposalCode == code
	}), nil
}

func (f *fakeBookingRepo) DeleteByProposalCodeAndBillboards(_ context.Context, code string, ids []int64) (int64, error) {
	f.writes++
	idSet := make(map[int64]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	return f.deleteIf(func(b *domain.Booking) bool {
		return b.ProposalCode != nil && *b.ProposalCode == code && idSet[b.BillboardID]
	}), nil
}

func (f *fakeBookingRepo) UpdatePeriodByProposalCode(_ context.Context, code string, period domain.Period) (int64, error) {
	f.writes++
	var n int64
	for _, b := range f.bookings {
		if b.ProposalCode != nil && *b.ProposalCode == code {
			b.PeriodType = period.Type
			b.StartDate = period.StartDate
			b.EndDate = period.EndDate
			b.SlotIDs = period.SlotIDs
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) UpdateOwnerByProposalCode(_ context.Context, code string, clientID, companyID int64) (int64, error) {
	f.writes++
	var n int64
	for _, b := range f.bookings {
		if b.ProposalCode != nil && *b.ProposalCode == code {
			b.ClientID = clientID
			b.CompanyID = companyID
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) DistinctProposalCodes(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range f.bookings {
		if b.Origin != domain.OriginProposal || b.ProposalCode == nil {
			continue
		}
		if !seen[*b.ProposalCode] {
			seen[*b.ProposalCode] = true
			out = append(out, *b.ProposalCode)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) deleteIf(match func(*domain.Booking) bool) int64 {
	kept := f.bookings[:0]
	var removed int64
	for _, b := range f.bookings {
		if match(b) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	f.bookings = kept
	return removed
}

type fakeBillboardRepo struct{ existing map[int64]bool }

func (f *fakeBillboardRepo) ExistingIDs(_ context.Context, _ int64, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = f.existing[id]
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func proposalFixture() *domain.Proposal {
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

func bookingFor(p *domain.Proposal, billboardID, id int64) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		BillboardID:  billboardID,
		ClientID:     p.ClientID,
		CompanyID:    p.CompanyID,
		PeriodType:   p.PeriodType,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		SlotIDs:      p.SlotIDs,
		Status:       domain.StatusAtivo,
		Origin:       domain.OriginProposal,
		ProposalCode: &p.Code,
	}
}

func newSweep(proposalRepo *fakeProposalRepo, bookingRepo *fakeBookingRepo, billboards map[int64]bool, now time.Time) *UseCase {
	return NewUseCase(
		proposalRepo,
		bookingRepo,
		&fakeBillboardRepo{existing: billboards},
		fakeTxManager{},
		fixedTime{now: now},
		nil,
		nopLogger{},
	)
}

func TestExecuteRecreatesMissingBookings(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	// só o outdoor 10 tem reserva; a do 20 sumiu
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{bookingFor(p, 10, 1)}, nextID: 1}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.Equal(t, int64(1), result.Reports[0].Created)
	assert.True(t, result.Reports[0].HadProblem)

	// a reserva recriada segue a proposta
	recreated, _ := bookingRepo.ListByProposalCode(context.Background(), p.Code)
	require.Len(t, recreated, 2)
	for _, b := range recreated {
		assert.Equal(t, p.StartDate, b.StartDate)
		assert.Equal(t, p.EndDate, b.EndDate)
		assert.Equal(t, domain.OriginProposal, b.Origin)
	}
}

func TestExecuteRemovesStrayBookings(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	// outdoor 99 não faz parte do pacote
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingFor(p, 10, 1),
		bookingFor(p, 20, 2),
		bookingFor(p, 99, 3),
	}, nextID: 3}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.Equal(t, int64(1), result.Reports[0].Removed)

	remaining, _ := bookingRepo.ListByProposalCode(context.Background(), p.Code)
	assert.Len(t, remaining, 2)
}

func TestExecuteRemovesDuplicates(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	// outdoor 10 com duas reservas ativas: apaga as duas e recria uma
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingFor(p, 10, 1),
		bookingFor(p, 10, 2),
		bookingFor(p, 20, 3),
	}, nextID: 3}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.Equal(t, int64(2), result.Reports[0].Removed)
	assert.Equal(t, int64(1), result.Reports[0].Created)

	remaining, _ := bookingRepo.ListByProposalCode(context.Background(), p.Code)
	assert.Len(t, remaining, 2)
}

func TestExecuteRealignsPeriodAndOwner(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}

	drifted := bookingFor(p, 10, 1)
	drifted.StartDate = date(2026, 4, 1)
	drifted.EndDate = date(2026, 4, 15)
	drifted.ClientID = 999

	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		drifted,
		bookingFor(p, 20, 2),
	}, nextID: 2}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.True(t, result.Reports[0].Corrected > 0)

	for _, b := range bookingRepo.bookings {
		assert.True(t, b.StartDate.Equal(p.StartDate))
		assert.True(t, b.EndDate.Equal(p.EndDate))
		assert.Equal(t, p.ClientID, b.ClientID)
	}
}

func TestExecuteIsIdempotent(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{bookingFor(p, 10, 1)}, nextID: 1}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	// primeira passada conserta
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Reports, 1)

	writesAfterFirst := bookingRepo.writes

	// segunda passada sobre um banco já são não escreve nada
	result, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Reports)
	assert.Equal(t, writesAfterFirst, bookingRepo.writes)
}

func TestExecuteRemovesOrphanBookings(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{}
	orphanCode := "PROP-20250101-DEADBEEF"
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, BillboardID: 10, ClientID: 3, CompanyID: 1,
			StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 15),
			Status: domain.StatusAtivo, Origin: domain.OriginProposal,
			ProposalCode: strPtr(orphanCode),
		},
	}, nextID: 1}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.OrphanBookingsRemoved)
	assert.Empty(t, bookingRepo.bookings)
}

func TestExecuteSkipsManualBookingsInOrphanCleanup(t *testing.T) {
	t.Parallel()

	proposalRepo := &fakeProposalRepo{}
	// reserva manual sem código nunca entra na limpeza de órfãs
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, BillboardID: 10, ClientID: 3, CompanyID: 1,
			StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 15),
			Status: domain.StatusAtivo, Origin: domain.OriginManual,
		},
	}, nextID: 1}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.OrphanBookingsRemoved)
	assert.Len(t, bookingRepo.bookings, 1)
}

func TestExecuteExpiresOverdueProposals(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	p.EndDate = date(2026, 1, 15) // já terminou
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	// faltam reservas, mas proposta vencida não é reconciliada
	bookingRepo := &fakeBookingRepo{}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true, 20: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Expired)
	assert.Equal(t, domain.ProposalVencida, p.Status)
	assert.Equal(t, int64(0), result.ProposalsChecked)
	assert.Empty(t, bookingRepo.bookings)
}

func TestExecuteFlagsMissingBillboard(t *testing.T) {
	t.Parallel()

	p := proposalFixture()
	proposalRepo := &fakeProposalRepo{proposals: []*domain.Proposal{p}}
	// outdoor 20 foi apagado do cadastro: nada a recriar, só sinaliza
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{bookingFor(p, 10, 1)}, nextID: 1}

	uc := newSweep(proposalRepo, bookingRepo, map[int64]bool{10: true}, date(2026, 2, 1))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	assert.True(t, result.Reports[0].Inconsistent)
	assert.Equal(t, int64(0), result.Reports[0].Created)

	remaining, _ := bookingRepo.ListByProposalCode(context.Background(), p.Code)
	assert.Len(t, remaining, 1)
}
