package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-StructureBooking/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	created := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	return &createBooking.Response{
		ID:          1,
		EventID:     req.EventID,
		StructureID: req.StructureID,
		StartDate:   *req.StartDate,
		EndDate:     time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC),
		Status:      "option",
		Occupied:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}, nil
}

func serve(uc *fakeUseCase, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/events/{eventId}/bookings", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, "/events/10/bookings", `{"structureId":7,"startDate":"2025-07-10","status":"option"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, int64(10), uc.got.EventID)
	assert.Nil(t, uc.got.EndDate)
	require.NotNil(t, uc.got.Status)
	assert.Equal(t, "option", *uc.got.Status)

	assert.JSONEq(t, `{
		"id": 1,
		"eventId": 10,
		"structureId": 7,
		"startDate": "2025-07-10",
		"endDate": "2025-07-17",
		"status": "option",
		"occupied": true,
		"createdAt": "2025-05-02T08:00:00Z",
		"updatedAt": "2025-05-02T08:00:00Z"
	}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{"bad event id", "/events/x/bookings", `{"structureId":7}`, nil, http.StatusBadRequest},
		{"bad body", "/events/10/bookings", `[]`, nil, http.StatusBadRequest},
		{"bad date", "/events/10/bookings", `{"structureId":7,"endDate":"17/07/2025"}`, nil, http.StatusBadRequest},
		{"event not found", "/events/10/bookings", `{"structureId":7}`, createBooking.ErrEventNotFound, http.StatusNotFound},
		{"structure not found", "/events/10/bookings", `{"structureId":7}`, createBooking.ErrStructureNotFound, http.StatusNotFound},
		{"invalid range", "/events/10/bookings", `{"structureId":7}`, createBooking.ErrInvalidRange, http.StatusBadRequest},
		{"invalid status", "/events/10/bookings", `{"structureId":7,"status":"confirmed"}`, createBooking.ErrInvalidStatus, http.StatusBadRequest},
		{"internal", "/events/10/bookings", `{"structureId":7}`, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
