package check_occupancy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkOccupancy "github.com/m04kA/SMC-StructureBooking/internal/usecase/check_occupancy"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *checkOccupancy.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkOccupancy.Request) (*checkOccupancy.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &checkOccupancy.Response{
		StructureID: req.StructureID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Occupied:    true,
		Conflicts: []checkOccupancy.Conflict{
			{BookingID: 4, EventID: 99, StartDate: req.StartDate, EndDate: req.StartDate.AddDate(0, 0, 2)},
		},
	}, nil
}

func serve(uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/structures/{structureId}/occupancy", NewHandler(uc, nopLogger{}).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, "/structures/7/occupancy?start=2025-07-10&end=2025-07-15&excludeEventId=10")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), uc.got.StartDate)
	require.NotNil(t, uc.got.ExcludeEventID)
	assert.Equal(t, int64(10), *uc.got.ExcludeEventID)

	assert.JSONEq(t, `{
		"structureId": 7,
		"startDate": "2025-07-10",
		"endDate": "2025-07-15",
		"occupied": true,
		"conflicts": [{"bookingId": 4, "eventId": 99, "startDate": "2025-07-10", "endDate": "2025-07-12"}]
	}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"bad structure id", "/structures/x/occupancy?start=2025-07-10&end=2025-07-15", nil, http.StatusBadRequest},
		{"missing end", "/structures/7/occupancy?start=2025-07-10", nil, http.StatusBadRequest},
		{"bad exclude", "/structures/7/occupancy?start=2025-07-10&end=2025-07-15&excludeEventId=a", nil, http.StatusBadRequest},
		{"not found", "/structures/7/occupancy?start=2025-07-10&end=2025-07-15", checkOccupancy.ErrStructureNotFound, http.StatusNotFound},
		{"reversed", "/structures/7/occupancy?start=2025-07-15&end=2025-07-10", checkOccupancy.ErrInvalidRange, http.StatusBadRequest},
		{"internal", "/structures/7/occupancy?start=2025-07-10&end=2025-07-15", checkOccupancy.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.path)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
