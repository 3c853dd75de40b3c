package list_structures

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/service/structures"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListStructuresRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListStructuresRequest) (*models.StructureListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.StructureListResponse{Structures: []models.StructureResponse{{ID: 1, Name: "Casa Alpina", Type: "house"}}}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/structures?season=summer&unit=EG", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got.Season)
	assert.Equal(t, "summer", *svc.got.Season)
	require.NotNil(t, svc.got.Unit)
	assert.Equal(t, "EG", *svc.got.Unit)
	assert.Contains(t, w.Body.String(), `"name":"Casa Alpina"`)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/structures", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Season)
	assert.Nil(t, svc.got.Unit)
}

func TestHandle_Errors(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{err: fmt.Errorf("%w: invalid season", structures.ErrInvalidInput)}, nopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodGet, "/structures?season=monsoon", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db")}, nopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodGet, "/structures", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
