package models

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
)

var (
	// ErrInvalidSeason возвращается при неизвестном сезоне
	ErrInvalidSeason = errors.New("invalid season")

	// ErrInvalidUnit возвращается при неизвестном подразделении
	ErrInvalidUnit = errors.New("invalid unit")
)

// Request модели

// ListStructuresRequest запрос на получение каталога структур
type ListStructuresRequest struct {
	Season *string `json:"season,omitempty"` // winter, spring, summer, autumn
	Unit   *string `json:"unit,omitempty"`   // LC, EG, RS, CC, ALL
}

// ToDomainFilters конвертирует фильтры запроса в domain значения
func (r *ListStructuresRequest) ToDomainFilters() (*domain.Season, *domain.Unit, error) {
	var season *domain.Season
	if r.Season != nil {
		s := domain.Season(*r.Season)
		switch s {
		case domain.SeasonWinter, domain.SeasonSpring, domain.SeasonSummer, domain.SeasonAutumn:
			season = &s
		default:
			return nil, nil, ErrInvalidSeason
		}
	}

	var unit *domain.Unit
	if r.Unit != nil {
		u := domain.Unit(*r.Unit)
		switch u {
		case domain.UnitLC, domain.UnitEG, domain.UnitRS, domain.UnitCC, domain.UnitAll:
			unit = &u
		default:
			return nil, nil, ErrInvalidUnit
		}
	}

	return season, unit, nil
}

// Response модели

// StructureResponse ответ с данными структуры
type StructureResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Type           string                 `json:"type"`
	Latitude       *float64               `json:"latitude,omitempty"`
	Longitude      *float64               `json:"longitude,omitempty"`
	IndoorBeds     *int                   `json:"indoorBeds,omitempty"`
	TentPitches    *int                   `json:"tentPitches,omitempty"`
	EstimatedCost  *string                `json:"estimatedDailyCost,omitempty"`
	CostBand       *string                `json:"costBand,omitempty"`
	CostOptions    []CostOptionResponse   `json:"costOptions"`
	Availabilities []AvailabilityResponse `json:"availabilities"`
}

// CostOptionResponse ценовая опция структуры
type CostOptionResponse struct {
	ID                 int64    `json:"id"`
	Model              string   `json:"model"`
	Amount             string   `json:"amount"`
	Currency           string   `json:"currency"`
	Deposit            *string  `json:"deposit,omitempty"`
	CityTaxPerNight    *string  `json:"cityTaxPerNight,omitempty"`
	UtilitiesFlat      *string  `json:"utilitiesFlat,omitempty"`
	CityTaxExemptUnits []string `json:"cityTaxExemptUnits,omitempty"`
}

// AvailabilityResponse сезонная доступность структуры
type AvailabilityResponse struct {
	Season      string   `json:"season"`
	Units       []string `json:"units"`
	MinCapacity *int     `json:"minCapacity,omitempty"`
	MaxCapacity *int     `json:"maxCapacity,omitempty"`
}

// StructureListResponse ответ со списком структур
type StructureListResponse struct {
	Structures []StructureResponse `json:"structures"`
}

// Методы конвертации

// FromDomainStructure конвертирует domain модель в DTO и оценивает ценовую категорию
func FromDomainStructure(s *domain.Structure, t costband.Thresholds) *StructureResponse {
	if s == nil {
		return nil
	}

	resp := &StructureResponse{
		ID:             s.ID,
		Name:           s.Name,
		Type:           string(s.Type),
		IndoorBeds:     s.IndoorBeds,
		TentPitches:    s.TentPitches,
		CostOptions:    make([]CostOptionResponse, 0, len(s.CostOptions)),
		Availabilities: make([]AvailabilityResponse, 0, len(s.Availabilities)),
	}

	if s.Coordinates != nil {
		lat, lon := s.Coordinates.Latitude, s.Coordinates.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}

	if cost, band := costband.Classify(s, t); cost != nil {
		resp.EstimatedCost = money(cost)
		b := string(*band)
		resp.CostBand = &b
	}

	for _, opt := range s.CostOptions {
		item := CostOptionResponse{
			ID:              opt.ID,
			Model:           string(opt.Model),
			Amount:          opt.Amount.StringFixed(domain.MoneyPlaces),
			Currency:        opt.Currency,
			Deposit:         money(opt.Deposit),
			CityTaxPerNight: money(opt.CityTaxPerNight),
			UtilitiesFlat:   money(opt.UtilitiesFlat),
		}
		if opt.AgeRules != nil {
			item.CityTaxExemptUnits = opt.AgeRules.CityTaxExemptUnits
		}
		resp.CostOptions = append(resp.CostOptions, item)
	}

	for _, a := range s.Availabilities {
		units := make([]string, 0, len(a.Units))
		for _, u := range a.Units {
			units = append(units, string(u))
		}
		resp.Availabilities = append(resp.Availabilities, AvailabilityResponse{
			Season:      string(a.Season),
			Units:       units,
			MinCapacity: a.MinCapacity,
			MaxCapacity: a.MaxCapacity,
		})
	}

	return resp
}

// FromDomainStructureList конвертирует список domain моделей в DTO
func FromDomainStructureList(structures []*domain.Structure, t costband.Thresholds) *StructureListResponse {
	resp := &StructureListResponse{Structures: make([]StructureResponse, 0, len(structures))}
	for _, s := range structures {
		if item := FromDomainStructure(s, t); item != nil {
			resp.Structures = append(resp.Structures, *item)
		}
	}
	return resp
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(domain.MoneyPlaces)
	return &s
}
