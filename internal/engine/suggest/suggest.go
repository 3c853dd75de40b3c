// Package suggest ranks candidate structures for an event.
package suggest

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
)

// Config holds the values Suggest needs from the application config
type Config struct {
	// Reference is the point distances are measured from. Nil disables distances.
	Reference  *geo.Point
	Thresholds costband.Thresholds
}

// Suggestion is a ranked candidate structure
type Suggestion struct {
	Structure     domain.Structure
	DistanceKm    *float64
	EstimatedCost *decimal.Decimal
	CostBand      *domain.CostBand
}

// requirement требования мероприятия к структуре
type requirement struct {
	season     domain.Season
	unit       *domain.Unit
	needIndoor bool
	needTents  bool
	indoorPeak int
	tentsPeak  int
}

func requirementFor(event *domain.Event) requirement {
	req := requirement{season: domain.SeasonForDate(event.StartDate)}
	if unit, ok := event.Branch.RequiredUnit(); ok {
		req.unit = &unit
	}

	indoor, tents := segmentsByAccommodation(event.BranchSegments)
	req.needIndoor = len(indoor) > 0
	req.needTents = len(tents) > 0
	req.indoorPeak = PeakLoad(indoor)
	req.tentsPeak = PeakLoad(tents)

	return req
}

// Suggest отбирает структуры, способные принять мероприятие, и сортирует их
// по расстоянию, затем по оценке стоимости, затем по названию. limit <= 0 возвращает все
func Suggest(event *domain.Event, candidates []domain.Structure, limit int, cfg Config) []Suggestion {
	if event == nil {
		return nil
	}

	// Требования считаем один раз для всех кандидатов
	req := requirementFor(event)

	suggestions := make([]Suggestion, 0, len(candidates))
	for i := range candidates {
		s := &candidates[i]
		if !StructureMatchesFilters(s, &req.season, req.unit) || !hasCapacity(s, req) {
			continue
		}

		cost, band := costband.Classify(s, cfg.Thresholds)

		// Без опорной точки расстояние не считаем, такие структуры уйдут в конец
		var distance *float64
		if cfg.Reference != nil {
			distance = geo.DistancePtr(*cfg.Reference, s.Coordinates)
		}

		suggestions = append(suggestions, Suggestion{
			Structure:     *s,
			DistanceKm:    distance,
			EstimatedCost: cost,
			CostBand:      band,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return less(&suggestions[i], &suggestions[j])
	})

	// Обрезаем только после сортировки
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// StructureMatchesFilters проверяет, что хотя бы одна доступность структуры подходит
// по сезону и подразделению. Nil фильтр подходит под любое значение; без фильтров
// подходит любая структура, даже без доступностей
func StructureMatchesFilters(structure *domain.Structure, season *domain.Season, unit *domain.Unit) bool {
	if season == nil && unit == nil {
		return true
	}

	for i := range structure.Availabilities {
		a := &structure.Availabilities[i]
		if season != nil && a.Season != *season {
			continue
		}
		if unit != nil && !a.AcceptsUnit(*unit) {
			continue
		}
		return true
	}
	return false
}

func hasCapacity(s *domain.Structure, req requirement) bool {
	// Сегменты в помещении: структура не только под палатки и кроватей хватает на пик
	if req.needIndoor {
		if !s.Type.HasIndoor() {
			return false
		}
		if req.indoorPeak > 0 && (s.IndoorBeds == nil || *s.IndoorBeds < req.indoorPeak) {
			return false
		}
	}

	// Симметрично для палаток: не только дом и хватает мест под палатки
	if req.needTents {
		if !s.Type.HasTents() {
			return false
		}
		if req.tentsPeak > 0 && (s.TentPitches == nil || *s.TentPitches < req.tentsPeak) {
			return false
		}
	}

	return true
}

// less сравнивает по расстоянию, оценке стоимости и названию в нижнем регистре
// Неизвестные расстояние или стоимость идут в конец
func less(a, b *Suggestion) bool {
	if c := compareOptional(a.DistanceKm, b.DistanceKm, func(x, y float64) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}); c != 0 {
		return c < 0
	}

	if c := compareOptional(a.EstimatedCost, b.EstimatedCost, func(x, y decimal.Decimal) int {
		return x.Cmp(y)
	}); c != 0 {
		return c < 0
	}

	an, bn := strings.ToLower(a.Structure.Name), strings.ToLower(b.Structure.Name)
	if an != bn {
		return an < bn
	}
	return a.Structure.ID < b.Structure.ID
}

func compareOptional[T any](a, b *T, cmp func(x, y T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp(*a, *b)
}
