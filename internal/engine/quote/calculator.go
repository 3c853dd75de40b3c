// Package quote turns an event and a structure into an itemized, reproducible
// cost quote.
package quote

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
)

const (
	descPerPersonDay   = "per-person/day cost"
	descPerPersonNight = "per-person/night cost"
	descFlat           = "flat fee"
	descUtilities      = "utilities"
	descCityTax        = "city tax"
	descDeposit        = "deposit"
)

// Config holds the values Calculate needs from the application config
type Config struct {
	DefaultCurrency string
	BaseUnits       []string
	Thresholds      costband.Thresholds
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		DefaultCurrency: domain.DefaultCurrency,
		BaseUnits:       slices.Clone(domain.BaseParticipantUnits),
		Thresholds:      costband.DefaultThresholds(),
	}
}

// Result is a computed quote ready to be persisted
type Result struct {
	Currency  string
	Totals    domain.QuoteTotals
	Breakdown []domain.BreakdownLine
	Inputs    domain.QuoteInputs
}

// Calculate считает смету мероприятия в структуре
// Все ошибки валидации возвращаются до построения результата
func Calculate(event *domain.Event, structure *domain.Structure, overrides Overrides, cfg Config) (*Result, error) {
	if event == nil || structure == nil {
		return nil, fmt.Errorf("%w: event and structure are required", ErrUnsupportedInput)
	}
	if len(cfg.BaseUnits) == 0 {
		cfg.BaseUnits = domain.BaseParticipantUnits
	}

	participants, err := resolveParticipants(event.Participants, overrides.Participants, cfg.BaseUnits)
	if err != nil {
		return nil, err
	}

	days, nights, err := resolveDuration(event, overrides)
	if err != nil {
		return nil, err
	}

	// Проверяем модели оплаты до расчёта, чтобы не вернуть частичный результат
	for _, opt := range structure.CostOptions {
		if !opt.Model.IsValid() {
			return nil, fmt.Errorf("%w: option %d: %q", ErrUnknownPricingModel, opt.ID, opt.Model)
		}
	}

	peopleTotal := 0
	for _, n := range participants {
		peopleTotal += n
	}
	// days > nights, поэтому проверки people*days достаточно для обеих позиций
	if peopleTotal > 0 && days > maxCount/peopleTotal {
		return nil, fmt.Errorf("%w: %d people for %d days", ErrQuantityOutOfRange, peopleTotal, days)
	}

	// Туристический налог платят все, кроме освобождённых подразделений
	exemptUnits := collectExemptUnits(structure.CostOptions)
	exemptPeople := 0
	for _, unit := range exemptUnits {
		exemptPeople += participants[unit]
	}
	taxablePeople := max(0, peopleTotal-exemptPeople)

	var (
		breakdown = make([]domain.BreakdownLine, 0, len(structure.CostOptions))
		totals    = domain.QuoteTotals{
			Subtotal:  decimal.Zero,
			Utilities: decimal.Zero,
			CityTax:   decimal.Zero,
			Deposit:   decimal.Zero,
		}
	)

	// Каждая позиция округляется сразу, итоги складываются из округлённых позиций
	for _, opt := range structure.CostOptions {
		line := modelLine(opt, peopleTotal, days, nights)
		breakdown = append(breakdown, line)
		totals.Subtotal = totals.Subtotal.Add(line.Amount)

		if opt.UtilitiesFlat != nil {
			line = fixedLine(opt.ID, domain.LineKindUtilities, descUtilities, *opt.UtilitiesFlat)
			breakdown = append(breakdown, line)
			totals.Utilities = totals.Utilities.Add(line.Amount)
		}

		if opt.CityTaxPerNight != nil {
			qty := taxablePeople * nights
			line = domain.BreakdownLine{
				OptionID:    opt.ID,
				Kind:        domain.LineKindCityTax,
				Description: descCityTax,
				Quantity:    qty,
				UnitAmount:  *opt.CityTaxPerNight,
				Amount:      round(opt.CityTaxPerNight.Mul(decimal.NewFromInt(int64(qty)))),
			}
			breakdown = append(breakdown, line)
			totals.CityTax = totals.CityTax.Add(line.Amount)
		}

		if opt.Deposit != nil {
			line = fixedLine(opt.ID, domain.LineKindDeposit, descDeposit, *opt.Deposit)
			breakdown = append(breakdown, line)
			totals.Deposit = totals.Deposit.Add(line.Amount)
		}
	}

	totals.Subtotal = round(totals.Subtotal)
	totals.Utilities = round(totals.Utilities)
	totals.CityTax = round(totals.CityTax)
	totals.Deposit = round(totals.Deposit)
	// Залог в итог не входит
	totals.Total = round(totals.Subtotal.Add(totals.Utilities).Add(totals.CityTax))

	currency := cfg.DefaultCurrency
	if len(structure.CostOptions) > 0 && structure.CostOptions[0].Currency != "" {
		currency = structure.CostOptions[0].Currency
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	meanDailyCost, band := costband.Classify(structure, cfg.Thresholds)

	return &Result{
		Currency:  currency,
		Totals:    totals,
		Breakdown: breakdown,
		Inputs: domain.QuoteInputs{
			Participants:  participants,
			PeopleTotal:   peopleTotal,
			TaxablePeople: taxablePeople,
			ExemptUnits:   exemptUnits,
			Days:          days,
			Nights:        nights,
			MeanDailyCost: meanDailyCost,
			CostBand:      band,
			Overrides:     snapshotOverrides(overrides),
			CostOptions:   SnapshotCostOptions(structure.CostOptions),
		},
	}, nil
}

// resolveParticipants возвращает численность по каждому базовому подразделению:
// значения мероприятия, поверх них переопределения
func resolveParticipants(stored, override map[string]int, baseUnits []string) (map[string]int, error) {
	for unit, n := range override {
		if !slices.Contains(baseUnits, unit) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParticipantUnit, unit)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeParticipants, unit, n)
		}
	}

	resolved := make(map[string]int, len(baseUnits))
	for _, unit := range baseUnits {
		n := stored[unit]
		if v, ok := override[unit]; ok {
			n = v
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeParticipants, unit, n)
		}
		if n > maxCount {
			return nil, fmt.Errorf("%w: %s=%d", ErrQuantityOutOfRange, unit, n)
		}
		resolved[unit] = n
	}

	return resolved, nil
}

// resolveDuration определяет дни и ночи; в каждой ветке days == nights + 1
func resolveDuration(event *domain.Event, o Overrides) (days, nights int, err error) {
	if o.Days == nil && o.Nights == nil {
		nights = domain.DaysBetween(event.StartDate, event.EndDate)
		if nights <= 0 {
			return 0, 0, ErrInvalidEventWindow
		}
		return nights + 1, nights, nil
	}

	if o.Nights != nil && *o.Nights <= 0 {
		return 0, 0, fmt.Errorf("%w: nights=%d", ErrNonPositiveNights, *o.Nights)
	}
	if o.Days != nil && *o.Days <= 0 {
		return 0, 0, fmt.Errorf("%w: days=%d", ErrNonPositiveDays, *o.Days)
	}

	switch {
	case o.Days != nil && o.Nights != nil:
		if *o.Days != *o.Nights+1 {
			return 0, 0, fmt.Errorf("%w: days=%d nights=%d", ErrDurationMismatch, *o.Days, *o.Nights)
		}
		return *o.Days, *o.Nights, nil
	case o.Nights != nil:
		return *o.Nights + 1, *o.Nights, nil
	default:
		nights = *o.Days - 1
		if nights <= 0 {
			return 0, 0, fmt.Errorf("%w: days=%d", ErrDaysImplyNoNights, *o.Days)
		}
		return *o.Days, nights, nil
	}
}

// collectExemptUnits объединяет освобождённые от туристического налога подразделения всех вариантов
// в порядке первого появления
func collectExemptUnits(options []domain.CostOption) []string {
	units := make([]string, 0)
	for _, opt := range options {
		if opt.AgeRules == nil {
			continue
		}
		for _, unit := range opt.AgeRules.CityTaxExemptUnits {
			if !slices.Contains(units, unit) {
				units = append(units, unit)
			}
		}
	}
	return units
}

func modelLine(opt domain.CostOption, people, days, nights int) domain.BreakdownLine {
	line := domain.BreakdownLine{
		OptionID:   opt.ID,
		Kind:       domain.LineKindModel,
		UnitAmount: opt.Amount,
	}

	switch opt.Model {
	case domain.PricingPerPersonDay:
		line.Description = descPerPersonDay
		line.Quantity = people * days
	case domain.PricingPerPersonNight:
		line.Description = descPerPersonNight
		line.Quantity = people * nights
	default:
		line.Description = descFlat
		line.Quantity = 1
	}

	line.Amount = round(opt.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
	return line
}

func fixedLine(optionID int64, kind domain.LineKind, desc string, amount decimal.Decimal) domain.BreakdownLine {
	return domain.BreakdownLine{
		OptionID:    optionID,
		Kind:        kind,
		Description: desc,
		Quantity:    1,
		UnitAmount:  amount,
		Amount:      round(amount),
	}
}

// SnapshotCostOptions возвращает глубокую копию вариантов стоимости
func SnapshotCostOptions(options []domain.CostOption) []domain.CostOptionSnapshot {
	out := make([]domain.CostOptionSnapshot, 0, len(options))
	for _, opt := range options {
		snap := domain.CostOptionSnapshot{
			ID:              opt.ID,
			Model:           opt.Model,
			Amount:          opt.Amount,
			Currency:        opt.Currency,
			Deposit:         copyDecimal(opt.Deposit),
			CityTaxPerNight: copyDecimal(opt.CityTaxPerNight),
			UtilitiesFlat:   copyDecimal(opt.UtilitiesFlat),
		}
		if opt.AgeRules != nil {
			snap.AgeRules = &domain.AgeRules{
				CityTaxExemptUnits: slices.Clone(opt.AgeRules.CityTaxExemptUnits),
			}
		}
		out = append(out, snap)
	}
	return out
}

func snapshotOverrides(o Overrides) domain.AppliedOverrides {
	applied := domain.AppliedOverrides{}
	if len(o.Participants) > 0 {
		applied.Participants = make(map[string]int, len(o.Participants))
		for k, v := range o.Participants {
			applied.Participants[k] = v
		}
	}
	if o.Days != nil {
		d := *o.Days
		applied.Days = &d
	}
	if o.Nights != nil {
		n := *o.Nights
		applied.Nights = &n
	}
	return applied
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(domain.MoneyPlaces)
}
