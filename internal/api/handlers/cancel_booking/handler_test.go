package cancel_booking

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

type fakeService struct{ err error }

func (f *fakeService) Cancel(context.Context, int64) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"ok", "/bookings/1/cancel", nil, http.StatusOK},
		{"bad id", "/bookings/one/cancel", nil, http.StatusBadRequest},
		{"not found", "/bookings/1/cancel", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"already closed", "/bookings/1/cancel", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", "/bookings/1/cancel", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, tt.path, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
