package get_structure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StructureBooking/internal/service/structures"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.StructureResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.StructureResponse{ID: id, Name: "Casa Alpina"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"ok", "/structures/3", nil, http.StatusOK},
		{"bad id", "/structures/three", nil, http.StatusBadRequest},
		{"not found", "/structures/3", structures.ErrStructureNotFound, http.StatusNotFound},
		{"internal", "/structures/3", structures.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/structures/{structureId}", NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"name":"Casa Alpina"`)
			}
		})
	}
}
