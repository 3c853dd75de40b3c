package reject_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
	got int64
}

func (f *fakeService) Reject(_ context.Context, id int64) error {
	f.got = id
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"ok", "/bookings/4/reject", nil, http.StatusOK},
		{"bad id", "/bookings/x/reject", nil, http.StatusBadRequest},
		{"not found", "/bookings/4/reject", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"confirmed booking", "/bookings/4/reject", bookings.ErrCannotReject, http.StatusBadRequest},
		{"internal", "/bookings/4/reject", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/bookings/{bookingId}/reject", NewHandler(svc, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, tt.path, nil))
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusBadRequest || tt.err != nil {
				assert.Equal(t, int64(4), svc.got)
			}
		})
	}
}
