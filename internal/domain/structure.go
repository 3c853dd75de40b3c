package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
)

// StructureType describes what kind of lodging a structure offers
type StructureType string

const (
	StructureTypeHouse StructureType = "house"
	StructureTypeLand  StructureType = "land"
	StructureTypeMixed StructureType = "mixed"
)

// HasIndoor returns true if the structure can host people indoors
func (t StructureType) HasIndoor() bool {
	return t != StructureTypeLand
}

// HasTents returns true if the structure can host tents
func (t StructureType) HasTents() bool {
	return t != StructureTypeHouse
}

// Structure is a physical venue that can be booked for an event
type Structure struct {
	ID          int64
	Name        string
	Type        StructureType
	Coordinates *geo.Point
	IndoorBeds  *int
	TentPitches *int

	CostOptions    []CostOption
	Availabilities []SeasonAvailability
}

// PricingModel describes how a cost option amount scales
type PricingModel string

const (
	PricingPerPersonDay   PricingModel = "per_person_day"
	PricingPerPersonNight PricingModel = "per_person_night"
	PricingFlat           PricingModel = "flat"
)

// IsValid returns true if the model is one of the known values
func (m PricingModel) IsValid() bool {
	return m == PricingPerPersonDay || m == PricingPerPersonNight || m == PricingFlat
}

// CostOption is one pricing rule of a structure
type CostOption struct {
	ID              int64
	Model           PricingModel
	Amount          decimal.Decimal
	Currency        string
	Deposit         *decimal.Decimal
	CityTaxPerNight *decimal.Decimal
	UtilitiesFlat   *decimal.Decimal
	AgeRules        *AgeRules
}

// AgeRules lists participant-unit specific exceptions of a cost option
type AgeRules struct {
	CityTaxExemptUnits []string `json:"city_tax_exempt_units,omitempty"`
}

// Season is a meteorological season
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

// Unit is a scouting unit a structure accepts. UnitAll is a wildcard.
type Unit string

const (
	UnitLC  Unit = "LC"
	UnitEG  Unit = "EG"
	UnitRS  Unit = "RS"
	UnitCC  Unit = "CC"
	UnitAll Unit = "ALL"
)

// SeasonAvailability declares which units a structure accepts in a season
type SeasonAvailability struct {
	ID          int64
	Season      Season
	Units       []Unit
	MinCapacity *int
	MaxCapacity *int
}

// AcceptsUnit returns true if the unit is listed or the wildcard is present
func (a *SeasonAvailability) AcceptsUnit(unit Unit) bool {
	for _, u := range a.Units {
		if u == unit || u == UnitAll {
			return true
		}
	}
	return false
}
