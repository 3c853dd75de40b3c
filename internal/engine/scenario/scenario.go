// Package scenario projects best, realistic and worst totals from a quote total.
package scenario

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

var ErrNegativeMargin = errors.New("scenario: margin must not be negative")

var one = decimal.NewFromInt(1)

// Margins are fractional adjustments: Best is a discount, Worst a surcharge
type Margins struct {
	Best  decimal.Decimal
	Worst decimal.Decimal
}

// DefaultMargins возвращает маржи по умолчанию
func DefaultMargins() Margins {
	return Margins{
		Best:  decimal.RequireFromString(domain.DefaultMarginBest),
		Worst: decimal.RequireFromString(domain.DefaultMarginWorst),
	}
}

// Validate отклоняет отрицательные маржи
func (m Margins) Validate() error {
	if m.Best.IsNegative() || m.Worst.IsNegative() {
		return ErrNegativeMargin
	}
	return nil
}

// Apply считает три сценария, каждый округляется отдельно
func Apply(total decimal.Decimal, m Margins) domain.Scenarios {
	return domain.Scenarios{
		Best:      total.Mul(one.Sub(m.Best)).Round(domain.MoneyPlaces),
		Realistic: total.Round(domain.MoneyPlaces),
		Worst:     total.Mul(one.Add(m.Worst)).Round(domain.MoneyPlaces),
	}
}
