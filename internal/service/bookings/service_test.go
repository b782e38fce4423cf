package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	bookingRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/booking"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking     *domain.Booking
	overlapping []*domain.Booking
	findErr     error
	deletedID   int64
}

func (f *fakeBookingRepo) GetByID(context.Context, int64, int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) FindOverlapping(context.Context, int64, int64, time.Time, time.Time, *int64) ([]*domain.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id, _ int64) error {
	f.deletedID = id
	return nil
}

type fakeClientRepo struct {
	names map[int64]string
	err   error
}

func (f *fakeClientRepo) NamesByIDs(context.Context, []int64) (map[int64]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

type fakeNotifier struct{ events []notifier.Event }

func (f *fakeNotifier) Enqueue(e notifier.Event) { f.events = append(f.events, e) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCancel(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:          101,
		BillboardID: 7,
		ClientID:    3,
		CompanyID:   1,
		StartDate:   date(2026, 3, 1),
		EndDate:     date(2026, 3, 15),
		Status:      domain.StatusAtivo,
	}}
	n := &fakeNotifier{}
	svc := NewService(repo, &fakeClientRepo{}, n, nopLogger{})

	err := svc.Cancel(context.Background(), 101, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(101), repo.deletedID)
	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventBookingCancelled, n.events[0].Type)
}

func TestCancelNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeBookingRepo{}, &fakeClientRepo{}, &fakeNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckAvailabilityFree(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeBookingRepo{}, &fakeClientRepo{}, &fakeNotifier{}, nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), &models.CheckAvailabilityRequest{
		BillboardID: 7,
		CompanyID:   1,
		StartDate:   date(2026, 3, 1),
		EndDate:     date(2026, 3, 15),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
}

func TestCheckAvailabilityWithConflicts(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{overlapping: []*domain.Booking{
		{
			ID:        55,
			ClientID:  9,
			StartDate: date(2026, 3, 10),
			EndDate:   date(2026, 3, 20),
			Status:    domain.StatusAtivo,
		},
	}}
	clients := &fakeClientRepo{names: map[int64]string{9: "Padaria Central"}}
	svc := NewService(repo, clients, &fakeNotifier{}, nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), &models.CheckAvailabilityRequest{
		BillboardID: 7,
		CompanyID:   1,
		StartDate:   date(2026, 3, 1),
		EndDate:     date(2026, 3, 15),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(55), resp.Conflicts[0].BookingID)
	assert.Equal(t, "Padaria Central", resp.Conflicts[0].ClientName)
}

func TestCheckAvailabilityNameLookupFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{overlapping: []*domain.Booking{
		{ID: 55, ClientID: 9, StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 20)},
	}}
	clients := &fakeClientRepo{err: errors.New("clients table unavailable")}
	svc := NewService(repo, clients, &fakeNotifier{}, nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), &models.CheckAvailabilityRequest{
		BillboardID: 7,
		CompanyID:   1,
		StartDate:   date(2026, 3, 1),
		EndDate:     date(2026, 3, 15),
	})
	require.NoError(t, err)

	require.Len(t, resp.Conflicts, 1)
	assert.Empty(t, resp.Conflicts[0].ClientName)
}

func TestCheckAvailabilityInvalidRange(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeBookingRepo{}, &fakeClientRepo{}, &fakeNotifier{}, nopLogger{})

	_, err := svc.CheckAvailability(context.Background(), &models.CheckAvailabilityRequest{
		BillboardID: 7,
		CompanyID:   1,
		StartDate:   date(2026, 3, 15),
		EndDate:     date(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
