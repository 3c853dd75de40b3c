// Package costband estimates a structure's averaged daily cost and buckets it
// into a named band.
package costband

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// Thresholds are the inclusive upper bounds of the cheap and medium bands
type Thresholds struct {
	CheapMax  decimal.Decimal
	MediumMax decimal.Decimal
}

// DefaultThresholds возвращает пороги по умолчанию
func DefaultThresholds() Thresholds {
	return Thresholds{
		CheapMax:  decimal.RequireFromString(domain.DefaultCheapMax),
		MediumMax: decimal.RequireFromString(domain.DefaultMediumMax),
	}
}

// EstimateMeanDailyCost усредняет amount + city tax + utilities по всем вариантам стоимости
// структуры и округляет до 2 знаков. Возвращает false, если вариантов нет
func EstimateMeanDailyCost(structure *domain.Structure) (decimal.Decimal, bool) {
	if structure == nil || len(structure.CostOptions) == 0 {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	for _, opt := range structure.CostOptions {
		sum = sum.Add(opt.Amount).
			Add(valueOrZero(opt.CityTaxPerNight)).
			Add(valueOrZero(opt.UtilitiesFlat))
	}

	mean := sum.Div(decimal.NewFromInt(int64(len(structure.CostOptions))))
	return mean.Round(domain.MoneyPlaces), true
}

// BandForCost относит значение к диапазону. Обе границы включительные
func BandForCost(value decimal.Decimal, t Thresholds) domain.CostBand {
	switch {
	case value.LessThanOrEqual(t.CheapMax):
		return domain.CostBandCheap
	case value.LessThanOrEqual(t.MediumMax):
		return domain.CostBandMedium
	default:
		return domain.CostBandExpensive
	}
}

// Classify объединяет EstimateMeanDailyCost и BandForCost
// Без вариантов стоимости оба результата nil
func Classify(structure *domain.Structure, t Thresholds) (*decimal.Decimal, *domain.CostBand) {
	mean, ok := EstimateMeanDailyCost(structure)
	if !ok {
		return nil, nil
	}
	band := BandForCost(mean, t)
	return &mean, &band
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
