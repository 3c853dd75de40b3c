package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostBand is a categorical label for a structure's averaged daily cost
type CostBand string

const (
	CostBandCheap     CostBand = "cheap"
	CostBandMedium    CostBand = "medium"
	CostBandExpensive CostBand = "expensive"
)

// LineKind classifies a quote breakdown line
type LineKind string

const (
	LineKindModel     LineKind = "model"
	LineKindUtilities LineKind = "utilities"
	LineKindCityTax   LineKind = "city_tax"
	LineKindDeposit   LineKind = "deposit"
)

// Quote is a persisted, reproducible cost estimate of an event at a structure
type Quote struct {
	ID          int64
	Reference   uuid.UUID
	EventID     int64
	StructureID int64
	Currency    string
	Totals      QuoteTotals
	Breakdown   []BreakdownLine
	Inputs      QuoteInputs
	Scenarios   Scenarios
	CreatedAt   time.Time
}

// QuoteTotals are the summed amounts of a quote.
// Total = Subtotal + Utilities + CityTax; Deposit is reported separately.
type QuoteTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Utilities decimal.Decimal `json:"utilities"`
	CityTax   decimal.Decimal `json:"city_tax"`
	Deposit   decimal.Decimal `json:"deposit"`
	Total     decimal.Decimal `json:"total"`
}

// BreakdownLine is one itemized amount of a quote
type BreakdownLine struct {
	OptionID    int64           `json:"option_id"`
	Kind        LineKind        `json:"kind"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unit_amount"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuoteInputs is the snapshot of everything a quote was computed from
type QuoteInputs struct {
	Participants  map[string]int       `json:"participants"`
	PeopleTotal   int                  `json:"people_total"`
	TaxablePeople int                  `json:"taxable_people"`
	ExemptUnits   []string             `json:"exempt_units"`
	Days          int                  `json:"days"`
	Nights        int                  `json:"nights"`
	MeanDailyCost *decimal.Decimal     `json:"mean_daily_cost,omitempty"`
	CostBand      *CostBand            `json:"cost_band,omitempty"`
	Overrides     AppliedOverrides     `json:"overrides"`
	CostOptions   []CostOptionSnapshot `json:"cost_options"`
}

// AppliedOverrides records which caller overrides were used
type AppliedOverrides struct {
	Participants map[string]int `json:"participants,omitempty"`
	Days         *int           `json:"days,omitempty"`
	Nights       *int           `json:"nights,omitempty"`
}

// CostOptionSnapshot is a frozen copy of a cost option
type CostOptionSnapshot struct {
	ID              int64            `json:"id"`
	Model           PricingModel     `json:"model"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Deposit         *decimal.Decimal `json:"deposit,omitempty"`
	CityTaxPerNight *decimal.Decimal `json:"city_tax_per_night,omitempty"`
	UtilitiesFlat   *decimal.Decimal `json:"utilities_flat,omitempty"`
	AgeRules        *AgeRules        `json:"age_rules,omitempty"`
}

// Scenarios are margin-adjusted views of a quote total
type Scenarios struct {
	Best      decimal.Decimal `json:"best"`
	Realistic decimal.Decimal `json:"realistic"`
	Worst     decimal.Decimal `json:"worst"`
}
