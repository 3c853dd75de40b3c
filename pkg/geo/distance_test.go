package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Pt(45.4642, 9.19)
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownCities(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"Milano-Roma", Pt(45.4642, 9.1900), Pt(41.9028, 12.4964), 477},
		{"Paris-London", Pt(48.8566, 2.3522), Pt(51.5074, -0.1278), 344},
		{"one degree of latitude", Pt(0, 0), Pt(1, 0), 111.19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 2.0)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Pt(43.7696, 11.2558)
	b := Pt(44.4949, 11.3426)
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_Antipodal(t *testing.T) {
	got := Distance(Pt(0, 0), Pt(0, 180))
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, math.Pi*EarthRadiusKm, got, 1e-6)
}

func TestDistancePtr(t *testing.T) {
	origin := Pt(45, 9)
	assert.Nil(t, DistancePtr(origin, nil))

	p := Pt(45, 10)
	d := DistancePtr(origin, &p)
	require.NotNil(t, d)
	assert.InDelta(t, Distance(origin, p), *d, 1e-9)
}
