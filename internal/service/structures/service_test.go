package structures

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	structures []domain.Structure
	err        error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Structure, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.structures {
		if f.structures[i].ID == id {
			return &f.structures[i], nil
		}
	}
	return nil, structureRepo.ErrStructureNotFound
}

func (f *fakeRepo) List(context.Context) ([]domain.Structure, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.structures, nil
}

func catalogue() []domain.Structure {
	return []domain.Structure{
		{
			ID:          1,
			Name:        "Casa Alpina",
			Type:        domain.StructureTypeHouse,
			Coordinates: ptr.Ptr(geo.Pt(46.1, 9.3)),
			IndoorBeds:  ptr.Ptr(40),
			CostOptions: []domain.CostOption{
				{ID: 11, Model: domain.PricingPerPersonNight, Amount: decimal.RequireFromString("12"), Currency: "EUR",
					CityTaxPerNight: ptr.Ptr(decimal.RequireFromString("1.5"))},
			},
			Availabilities: []domain.SeasonAvailability{
				{Season: domain.SeasonSummer, Units: []domain.Unit{domain.UnitEG, domain.UnitRS}},
			},
		},
		{
			ID:          2,
			Name:        "Prato Grande",
			Type:        domain.StructureTypeLand,
			TentPitches: ptr.Ptr(15),
			Availabilities: []domain.SeasonAvailability{
				{Season: domain.SeasonWinter, Units: []domain.Unit{domain.UnitAll}},
			},
		},
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeRepo{structures: catalogue()}, costband.DefaultThresholds(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "house", resp.Type)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, 46.1, *resp.Latitude)
	require.NotNil(t, resp.EstimatedCost)
	assert.Equal(t, "13.50", *resp.EstimatedCost)
	assert.Equal(t, "medium", *resp.CostBand)
	require.Len(t, resp.CostOptions, 1)
	assert.Equal(t, "12.00", resp.CostOptions[0].Amount)
	assert.Equal(t, []string{"EG", "RS"}, resp.Availabilities[0].Units)

	noCost, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, noCost.EstimatedCost)
	assert.Nil(t, noCost.CostBand)
	assert.Nil(t, noCost.Latitude)
}

func TestGetByID_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{structures: catalogue()}, costband.DefaultThresholds(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrStructureNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	broken := NewService(&fakeRepo{err: errors.New("db down")}, costband.DefaultThresholds(), nopLogger{})
	_, err = broken.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	svc := NewService(&fakeRepo{structures: catalogue()}, costband.DefaultThresholds(), nopLogger{})

	tests := []struct {
		name    string
		req     *models.ListStructuresRequest
		wantIDs []int64
		wantErr error
	}{
		{"no filters", &models.ListStructuresRequest{}, []int64{1, 2}, nil},
		{"summer", &models.ListStructuresRequest{Season: ptr.Ptr("summer")}, []int64{1}, nil},
		{"wildcard unit matches LC", &models.ListStructuresRequest{Unit: ptr.Ptr("LC")}, []int64{2}, nil},
		{"summer EG", &models.ListStructuresRequest{Season: ptr.Ptr("summer"), Unit: ptr.Ptr("EG")}, []int64{1}, nil},
		{"winter RS", &models.ListStructuresRequest{Season: ptr.Ptr("winter"), Unit: ptr.Ptr("RS")}, []int64{2}, nil},
		{"spring", &models.ListStructuresRequest{Season: ptr.Ptr("spring")}, []int64{}, nil},
		{"unknown season", &models.ListStructuresRequest{Season: ptr.Ptr("monsoon")}, nil, ErrInvalidInput},
		{"unknown unit", &models.ListStructuresRequest{Unit: ptr.Ptr("XX")}, nil, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			ids := make([]int64, 0, len(resp.Structures))
			for _, s := range resp.Structures {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
