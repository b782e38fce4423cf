package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "partial overlap",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 15),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 20),
			expected: true,
		},
		{
			name:   "contained range",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 30),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 15),
			expected: true,
		},
		{
			name:   "identical range",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 15),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 15),
			expected: true,
		},
		{
			name:   "touching ranges do not overlap",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 15),
			bStart: date(2026, 3, 15), bEnd: date(2026, 3, 30),
			expected: false,
		},
		{
			name:   "touching ranges reversed",
			aStart: date(2026, 3, 15), aEnd: date(2026, 3, 30),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 15),
			expected: false,
		},
		{
			name:   "disjoint ranges",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 10),
			bStart: date(2026, 4, 1), bEnd: date(2026, 4, 10),
			expected: false,
		},
		{
			name:   "single day inside",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 11),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 30),
			expected: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// predicado simétrico
			assert.Equal(t, tc.expected, RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestPeriodIsValid(t *testing.T) {
	t.Parallel()

	valid := Period{Type: PeriodCustom, StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 15)}
	assert.True(t, valid.IsValid())

	inverted := Period{Type: PeriodCustom, StartDate: date(2026, 3, 15), EndDate: date(2026, 3, 1)}
	assert.False(t, inverted.IsValid())

	empty := Period{Type: PeriodCustom, StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 1)}
	assert.False(t, empty.IsValid())
}

func TestBookingOverlapsRange(t *testing.T) {
	t.Parallel()

	booking := &Booking{
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 15),
	}

	assert.True(t, booking.OverlapsRange(date(2026, 3, 10), date(2026, 3, 20)))
	assert.False(t, booking.OverlapsRange(date(2026, 3, 15), date(2026, 3, 30)))
	assert.False(t, booking.OverlapsRange(date(2026, 2, 1), date(2026, 3, 1)))
}
