package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// QuoteResponse ответ с данными сметы
// Денежные суммы передаются строками с двумя знаками после запятой
type QuoteResponse struct {
	ID          int64             `json:"id"`
	Reference   string            `json:"reference"`
	EventID     int64             `json:"eventId"`
	StructureID int64             `json:"structureId"`
	Currency    string            `json:"currency"`
	Totals      TotalsResponse    `json:"totals"`
	Breakdown   []LineResponse    `json:"breakdown"`
	Inputs      InputsResponse    `json:"inputs"`
	Scenarios   ScenariosResponse `json:"scenarios"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TotalsResponse итоговые суммы сметы
type TotalsResponse struct {
	Subtotal  string `json:"subtotal"`
	Utilities string `json:"utilities"`
	CityTax   string `json:"cityTax"`
	Deposit   string `json:"deposit"`
	Total     string `json:"total"`
}

// LineResponse строка детализации
type LineResponse struct {
	OptionID    int64  `json:"optionId"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitAmount  string `json:"unitAmount"`
	Amount      string `json:"amount"`
}

// InputsResponse входные данные, по которым посчитана смета
type InputsResponse struct {
	Participants  map[string]int     `json:"participants"`
	PeopleTotal   int                `json:"peopleTotal"`
	TaxablePeople int                `json:"taxablePeople"`
	ExemptUnits   []string           `json:"exemptUnits"`
	Days          int                `json:"days"`
	Nights        int                `json:"nights"`
	MeanDailyCost *string            `json:"meanDailyCost,omitempty"`
	CostBand      *string            `json:"costBand,omitempty"`
	Overrides     OverridesResponse  `json:"overrides"`
	CostOptions   []CostOptionResult `json:"costOptions"`
}

// OverridesResponse применённые переопределения
type OverridesResponse struct {
	Participants map[string]int `json:"participants,omitempty"`
	Days         *int           `json:"days,omitempty"`
	Nights       *int           `json:"nights,omitempty"`
}

// CostOptionResult снимок ценовой опции на момент расчёта
type CostOptionResult struct {
	ID                 int64    `json:"id"`
	Model              string   `json:"model"`
	Amount             string   `json:"amount"`
	Currency           string   `json:"currency"`
	Deposit            *string  `json:"deposit,omitempty"`
	CityTaxPerNight    *string  `json:"cityTaxPerNight,omitempty"`
	UtilitiesFlat      *string  `json:"utilitiesFlat,omitempty"`
	CityTaxExemptUnits []string `json:"cityTaxExemptUnits,omitempty"`
}

// ScenariosResponse сценарии итоговой суммы
type ScenariosResponse struct {
	Best      string `json:"best"`
	Realistic string `json:"realistic"`
	Worst     string `json:"worst"`
}

// QuoteListResponse ответ со списком смет
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// FromDomainQuote конвертирует domain модель в DTO
func FromDomainQuote(q *domain.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}

	resp := &QuoteResponse{
		ID:          q.ID,
		Reference:   q.Reference.String(),
		EventID:     q.EventID,
		StructureID: q.StructureID,
		Currency:    q.Currency,
		Totals: TotalsResponse{
			Subtotal:  Money(q.Totals.Subtotal),
			Utilities: Money(q.Totals.Utilities),
			CityTax:   Money(q.Totals.CityTax),
			Deposit:   Money(q.Totals.Deposit),
			Total:     Money(q.Totals.Total),
		},
		Breakdown: make([]LineResponse, 0, len(q.Breakdown)),
		Inputs:    fromDomainInputs(q.Inputs),
		Scenarios: ScenariosResponse{
			Best:      Money(q.Scenarios.Best),
			Realistic: Money(q.Scenarios.Realistic),
			Worst:     Money(q.Scenarios.Worst),
		},
		CreatedAt: q.CreatedAt,
	}

	for _, line := range q.Breakdown {
		resp.Breakdown = append(resp.Breakdown, LineResponse{
			OptionID:    line.OptionID,
			Kind:        string(line.Kind),
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitAmount:  Money(line.UnitAmount),
			Amount:      Money(line.Amount),
		})
	}

	return resp
}

// FromDomainQuoteList конвертирует список domain моделей в DTO
func FromDomainQuoteList(quotes []*domain.Quote) *QuoteListResponse {
	resp := &QuoteListResponse{Quotes: make([]QuoteResponse, 0, len(quotes))}
	for _, q := range quotes {
		if item := FromDomainQuote(q); item != nil {
			resp.Quotes = append(resp.Quotes, *item)
		}
	}
	return resp
}

// Money форматирует сумму с двумя знаками после запятой
func Money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyPlaces)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

func fromDomainInputs(in domain.QuoteInputs) InputsResponse {
	resp := InputsResponse{
		Participants:  in.Participants,
		PeopleTotal:   in.PeopleTotal,
		TaxablePeople: in.TaxablePeople,
		ExemptUnits:   in.ExemptUnits,
		Days:          in.Days,
		Nights:        in.Nights,
		MeanDailyCost: moneyPtr(in.MeanDailyCost),
		Overrides: OverridesResponse{
			Participants: in.Overrides.Participants,
			Days:         in.Overrides.Days,
			Nights:       in.Overrides.Nights,
		},
		CostOptions: make([]CostOptionResult, 0, len(in.CostOptions)),
	}
	if resp.ExemptUnits == nil {
		resp.ExemptUnits = []string{}
	}
	if in.CostBand != nil {
		band := string(*in.CostBand)
		resp.CostBand = &band
	}

	for _, opt := range in.CostOptions {
		item := CostOptionResult{
			ID:              opt.ID,
			Model:           string(opt.Model),
			Amount:          Money(opt.Amount),
			Currency:        opt.Currency,
			Deposit:         moneyPtr(opt.Deposit),
			CityTaxPerNight: moneyPtr(opt.CityTaxPerNight),
			UtilitiesFlat:   moneyPtr(opt.UtilitiesFlat),
		}
		if opt.AgeRules != nil {
			item.CityTaxExemptUnits = opt.AgeRules.CityTaxExemptUnits
		}
		resp.CostOptions = append(resp.CostOptions, item)
	}

	return resp
}
