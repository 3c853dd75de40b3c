package suggest_structures

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	suggestStructures "github.com/m04kA/SMC-StructureBooking/internal/usecase/suggest_structures"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *suggestStructures.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *suggestStructures.Request) (*suggestStructures.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	band := domain.CostBandCheap
	return &suggestStructures.Response{
		EventID: req.EventID,
		Season:  domain.SeasonSummer,
		Limit:   10,
		Items: []suggestStructures.Item{
			{
				StructureID:   7,
				Name:          "Casa Alpina",
				Type:          domain.StructureTypeHouse,
				Coordinates:   ptr.Ptr(geo.Pt(46.1, 9.3)),
				DistanceKm:    ptr.Ptr(12.5),
				EstimatedCost: ptr.Ptr(decimal.RequireFromString("9.5")),
				CostBand:      &band,
			},
		},
	}, nil
}

func serve(uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/events/{eventId}/suggestions", NewHandler(uc, nopLogger{}).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, "/events/10/suggestions?limit=5&excludeOccupied=true")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, uc.got.Limit)
	assert.Equal(t, 5, *uc.got.Limit)
	assert.True(t, uc.got.ExcludeOccupied)

	assert.JSONEq(t, `{
		"eventId": 10,
		"season": "summer",
		"limit": 10,
		"items": [{
			"structureId": 7,
			"name": "Casa Alpina",
			"type": "house",
			"latitude": 46.1,
			"longitude": 9.3,
			"distanceKm": 12.5,
			"estimatedDailyCost": "9.50",
			"costBand": "cheap",
			"occupied": false
		}]
	}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"bad event id", "/events/x/suggestions", nil, http.StatusBadRequest},
		{"bad limit", "/events/10/suggestions?limit=ten", nil, http.StatusBadRequest},
		{"bad flag", "/events/10/suggestions?excludeOccupied=maybe", nil, http.StatusBadRequest},
		{"event not found", "/events/10/suggestions", suggestStructures.ErrEventNotFound, http.StatusNotFound},
		{"invalid input", "/events/10/suggestions?limit=-1", suggestStructures.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/events/10/suggestions", suggestStructures.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.path)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
