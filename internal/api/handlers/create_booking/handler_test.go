package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/domain"
	createBooking "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	response *createBooking.Response
	err      error
	received *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.received = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, companyHeader, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	endpoint := middleware.Auth(http.HandlerFunc(h.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if companyHeader != "" {
		req.Header.Set(middleware.HeaderCompanyID, companyHeader)
	}

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{response: &createBooking.Response{
		ID:          101,
		BillboardID: 7,
		ClientID:    3,
		CompanyID:   1,
		Status:      string(domain.StatusAtivo),
	}}

	rec := doRequest(t, uc, "1", `{"billboardId":7,"clientId":3,"startDate":"2026-03-01","endDate":"2026-03-15"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// a empresa vem do cabeçalho, não do corpo
	require.NotNil(t, uc.received)
	assert.Equal(t, int64(1), uc.received.CompanyID)
	require.NotNil(t, uc.received.StartDate)
	assert.Equal(t, "2026-03-01", uc.received.StartDate.Format(domain.DateFormat))
}

func TestHandleMissingCompanyHeader(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{}, "", `{"billboardId":7,"clientId":3}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleInvalidBody(t *testing.T) {
	t.Parallel()

	// campo desconhecido é rejeitado
	rec := doRequest(t, &fakeUseCase{}, "1", `{"billboardId":7,"unknownField":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &fakeUseCase{}, "1", `{"billboardId":7,"startDate":"01/03/2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConflictPayload(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{err: &createBooking.ConflictError{Conflicts: []*domain.Booking{
		{
			ID:        55,
			ClientID:  9,
			StartDate: mustDate("2026-03-10"),
			EndDate:   mustDate("2026-03-20"),
		},
	}}}

	rec := doRequest(t, uc, "1", `{"billboardId":7,"clientId":3,"startDate":"2026-03-01","endDate":"2026-03-15"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, int64(55), body.Conflicts[0].BookingID)
	assert.Equal(t, "2026-03-10", body.Conflicts[0].StartDate)
}

func TestHandleNotFoundErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"client not found", createBooking.ErrClientNotFound, http.StatusNotFound},
		{"billboard not found", createBooking.ErrBillboardNotFound, http.StatusNotFound},
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"invalid period", createBooking.ErrInvalidPeriod, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(t, &fakeUseCase{err: tc.err}, "1",
				`{"billboardId":7,"clientId":3,"startDate":"2026-03-01","endDate":"2026-03-15"}`)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func mustDate(s string) (t time.Time) {
	t, _ = time.Parse(domain.DateFormat, s)
	return t
}
