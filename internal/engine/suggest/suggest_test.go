package suggest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func segment(start, end string, youth, leaders int, acc domain.Accommodation) domain.BranchSegment {
	return domain.BranchSegment{
		StartDate:     day(start),
		EndDate:       day(end),
		YouthCount:    youth,
		LeadersCount:  leaders,
		Accommodation: acc,
	}
}

func summerAvailability(units ...domain.Unit) []domain.SeasonAvailability {
	return []domain.SeasonAvailability{{Season: domain.SeasonSummer, Units: units}}
}

func flatCost(amount string) []domain.CostOption {
	return []domain.CostOption{{Model: domain.PricingFlat, Amount: decimal.RequireFromString(amount)}}
}

func testConfig() Config {
	return Config{
		Reference:  ptr.Ptr(geo.Pt(45.4642, 9.19)),
		Thresholds: costband.DefaultThresholds(),
	}
}

func names(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Structure.Name)
	}
	return out
}

func TestPeakLoad(t *testing.T) {
	tests := []struct {
		name     string
		segments []domain.BranchSegment
		want     int
	}{
		{"no segments", nil, 0},
		{
			"partially overlapping segments",
			[]domain.BranchSegment{
				segment("2025-07-01", "2025-07-05", 25, 5, domain.AccommodationIndoor),
				segment("2025-07-03", "2025-07-08", 16, 4, domain.AccommodationIndoor),
			},
			50,
		},
		{
			"consecutive segments do not stack",
			[]domain.BranchSegment{
				segment("2025-07-01", "2025-07-04", 30, 0, domain.AccommodationIndoor),
				segment("2025-07-05", "2025-07-08", 20, 0, domain.AccommodationIndoor),
			},
			30,
		},
		{
			"segment starting on another's last day stacks",
			[]domain.BranchSegment{
				segment("2025-07-01", "2025-07-04", 30, 0, domain.AccommodationIndoor),
				segment("2025-07-04", "2025-07-08", 20, 0, domain.AccommodationIndoor),
			},
			50,
		},
		{
			"nested segments",
			[]domain.BranchSegment{
				segment("2025-07-01", "2025-07-10", 10, 2, domain.AccommodationTents),
				segment("2025-07-02", "2025-07-03", 5, 1, domain.AccommodationTents),
				segment("2025-07-08", "2025-07-09", 7, 1, domain.AccommodationTents),
			},
			20,
		},
		{
			"kitchen staff and invalid segments are ignored",
			[]domain.BranchSegment{
				{StartDate: day("2025-07-01"), EndDate: day("2025-07-02"), YouthCount: 4, KitchenCount: 10},
				segment("2025-07-05", "2025-07-01", 99, 0, domain.AccommodationIndoor),
			},
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeakLoad(tt.segments))
		})
	}
}

func TestStructureMatchesFilters(t *testing.T) {
	summer, winter := domain.SeasonSummer, domain.SeasonWinter
	eg, rs := domain.UnitEG, domain.UnitRS

	s := &domain.Structure{Availabilities: []domain.SeasonAvailability{
		{Season: domain.SeasonSummer, Units: []domain.Unit{domain.UnitEG, domain.UnitLC}},
		{Season: domain.SeasonWinter, Units: []domain.Unit{domain.UnitAll}},
	}}

	assert.True(t, StructureMatchesFilters(s, nil, nil))
	assert.True(t, StructureMatchesFilters(s, &summer, &eg))
	assert.False(t, StructureMatchesFilters(s, &summer, &rs))
	assert.True(t, StructureMatchesFilters(s, &winter, &rs), "wildcard unit")
	assert.True(t, StructureMatchesFilters(s, nil, &rs))
	assert.True(t, StructureMatchesFilters(s, &summer, nil))

	empty := &domain.Structure{}
	assert.True(t, StructureMatchesFilters(empty, nil, nil))
	assert.False(t, StructureMatchesFilters(empty, &summer, nil))
}

func TestSuggest_FiltersBySeasonAndUnit(t *testing.T) {
	event := &domain.Event{Branch: domain.BranchEG, StartDate: day("2025-07-10"), EndDate: day("2025-07-12")}

	candidates := []domain.Structure{
		{ID: 1, Name: "Summer EG", Type: domain.StructureTypeMixed, Availabilities: summerAvailability(domain.UnitEG)},
		{ID: 2, Name: "Summer RS", Type: domain.StructureTypeMixed, Availabilities: summerAvailability(domain.UnitRS)},
		{ID: 3, Name: "Summer all", Type: domain.StructureTypeMixed, Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 4, Name: "Winter EG", Type: domain.StructureTypeMixed,
			Availabilities: []domain.SeasonAvailability{{Season: domain.SeasonWinter, Units: []domain.Unit{domain.UnitEG}}}},
		{ID: 5, Name: "Nothing declared", Type: domain.StructureTypeMixed},
	}

	got := Suggest(event, candidates, 0, testConfig())
	assert.Equal(t, []string{"Summer all", "Summer EG"}, names(got))

	event.Branch = domain.BranchAll
	got = Suggest(event, candidates, 0, testConfig())
	assert.Equal(t, []string{"Summer all", "Summer EG", "Summer RS"}, names(got))
}

func TestSuggest_Capacity(t *testing.T) {
	event := &domain.Event{
		Branch:    domain.BranchAll,
		StartDate: day("2025-07-01"),
		EndDate:   day("2025-07-08"),
		BranchSegments: []domain.BranchSegment{
			segment("2025-07-01", "2025-07-05", 25, 5, domain.AccommodationIndoor),
			segment("2025-07-03", "2025-07-08", 16, 4, domain.AccommodationIndoor),
		},
	}

	candidates := []domain.Structure{
		{ID: 1, Name: "Big house", Type: domain.StructureTypeHouse, IndoorBeds: ptr.Ptr(50), Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 2, Name: "Small house", Type: domain.StructureTypeHouse, IndoorBeds: ptr.Ptr(49), Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 3, Name: "Meadow", Type: domain.StructureTypeLand, TentPitches: ptr.Ptr(100), Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 4, Name: "Unknown beds", Type: domain.StructureTypeMixed, Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 5, Name: "Farm", Type: domain.StructureTypeMixed, IndoorBeds: ptr.Ptr(60), Availabilities: summerAvailability(domain.UnitAll)},
	}

	got := Suggest(event, candidates, 0, testConfig())
	assert.Equal(t, []string{"Big house", "Farm"}, names(got))

	event.BranchSegments = append(event.BranchSegments, segment("2025-07-02", "2025-07-04", 10, 2, domain.AccommodationTents))
	candidates[4].TentPitches = ptr.Ptr(12)
	got = Suggest(event, candidates, 0, testConfig())
	assert.Equal(t, []string{"Farm"}, names(got), "house-only structures cannot host tents")
}

func TestSuggest_ZeroPeopleSegmentsOnlyCheckType(t *testing.T) {
	event := &domain.Event{
		Branch:         domain.BranchAll,
		StartDate:      day("2025-07-01"),
		EndDate:        day("2025-07-02"),
		BranchSegments: []domain.BranchSegment{segment("2025-07-01", "2025-07-02", 0, 0, domain.AccommodationTents)},
	}

	candidates := []domain.Structure{
		{ID: 1, Name: "House", Type: domain.StructureTypeHouse, Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 2, Name: "Land", Type: domain.StructureTypeLand, Availabilities: summerAvailability(domain.UnitAll)},
	}

	assert.Equal(t, []string{"Land"}, names(Suggest(event, candidates, 0, testConfig())))
}

func TestSuggest_Ordering(t *testing.T) {
	event := &domain.Event{Branch: domain.BranchAll, StartDate: day("2025-08-01"), EndDate: day("2025-08-03")}
	avail := summerAvailability(domain.UnitAll)

	candidates := []domain.Structure{
		{ID: 1, Name: "far", Coordinates: ptr.Ptr(geo.Pt(41.9, 12.5)), CostOptions: flatCost("5"), Availabilities: avail},
		{ID: 2, Name: "no coordinates", CostOptions: flatCost("1"), Availabilities: avail},
		{ID: 3, Name: "near expensive", Coordinates: ptr.Ptr(geo.Pt(45.5, 9.2)), CostOptions: flatCost("30"), Availabilities: avail},
		{ID: 4, Name: "near cheap", Coordinates: ptr.Ptr(geo.Pt(45.5, 9.2)), CostOptions: flatCost("8"), Availabilities: avail},
		{ID: 5, Name: "Near unpriced", Coordinates: ptr.Ptr(geo.Pt(45.5, 9.2)), Availabilities: avail},
		{ID: 6, Name: "alpha unpriced", Coordinates: ptr.Ptr(geo.Pt(45.5, 9.2)), Availabilities: avail},
		{ID: 7, Name: "also no coordinates", Availabilities: avail},
	}

	got := Suggest(event, candidates, 0, testConfig())
	require.Len(t, got, 7)
	assert.Equal(t, []string{
		"near cheap",
		"near expensive",
		"alpha unpriced",
		"Near unpriced",
		"far",
		"no coordinates",
		"also no coordinates",
	}, names(got))

	require.NotNil(t, got[0].DistanceKm)
	require.NotNil(t, got[0].CostBand)
	assert.Equal(t, domain.CostBandCheap, *got[0].CostBand)
	assert.Equal(t, domain.CostBandExpensive, *got[1].CostBand)
	assert.Nil(t, got[2].EstimatedCost)
	assert.Nil(t, got[5].DistanceKm)

	for i := 1; i < len(got); i++ {
		assert.False(t, less(&got[i], &got[i-1]), "suggestions must be non-decreasing at %d", i)
	}
}

func TestSuggest_Limit(t *testing.T) {
	event := &domain.Event{Branch: domain.BranchAll, StartDate: day("2025-03-01"), EndDate: day("2025-03-02")}
	avail := []domain.SeasonAvailability{{Season: domain.SeasonSpring, Units: []domain.Unit{domain.UnitAll}}}

	candidates := []domain.Structure{
		{ID: 1, Name: "c", Availabilities: avail},
		{ID: 2, Name: "a", Availabilities: avail},
		{ID: 3, Name: "b", Availabilities: avail},
	}

	assert.Equal(t, []string{"a", "b"}, names(Suggest(event, candidates, 2, testConfig())))
	assert.Len(t, Suggest(event, candidates, 10, testConfig()), 3)
	assert.Len(t, Suggest(event, candidates, 0, testConfig()), 3)
}

func TestSuggest_NoReferencePoint(t *testing.T) {
	event := &domain.Event{Branch: domain.BranchAll, StartDate: day("2025-07-01"), EndDate: day("2025-07-02")}
	candidates := []domain.Structure{
		{ID: 1, Name: "b", Coordinates: ptr.Ptr(geo.Pt(45, 9)), Availabilities: summerAvailability(domain.UnitAll)},
		{ID: 2, Name: "a", Availabilities: summerAvailability(domain.UnitAll)},
	}

	got := Suggest(event, candidates, 0, Config{Thresholds: costband.DefaultThresholds()})
	assert.Equal(t, []string{"a", "b"}, names(got))
	assert.Nil(t, got[1].DistanceKm)
}
