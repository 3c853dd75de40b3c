package quote

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

func TestSnapshotRoundTrip(t *testing.T) {
	band := domain.CostBandMedium
	mean := decimal.RequireFromString("12.50")
	deposit := decimal.RequireFromString("100.00")

	original := &domain.Quote{
		Reference: uuid.New(),
		Breakdown: []domain.BreakdownLine{{
			OptionID:    3,
			Kind:        domain.LineKindModel,
			Description: "flat fee",
			Quantity:    1,
			UnitAmount:  decimal.RequireFromString("300"),
			Amount:      decimal.RequireFromString("300.00"),
		}},
		Inputs: domain.QuoteInputs{
			Participants:  map[string]int{"lc": 10},
			PeopleTotal:   10,
			TaxablePeople: 10,
			ExemptUnits:   []string{},
			Days:          3,
			Nights:        2,
			MeanDailyCost: &mean,
			CostBand:      &band,
			CostOptions: []domain.CostOptionSnapshot{{
				ID:      3,
				Model:   domain.PricingFlat,
				Amount:  decimal.RequireFromString("300"),
				Deposit: &deposit,
			}},
		},
		Scenarios: domain.Scenarios{
			Best:      decimal.RequireFromString("285"),
			Realistic: decimal.RequireFromString("300"),
			Worst:     decimal.RequireFromString("330"),
		},
	}

	breakdown, inputs, scenarios, err := encodeSnapshot(original)
	require.NoError(t, err)

	var restored domain.Quote
	require.NoError(t, decodeSnapshot(&restored, breakdown, inputs, scenarios))

	require.Len(t, restored.Breakdown, 1)
	assert.True(t, restored.Breakdown[0].Amount.Equal(original.Breakdown[0].Amount))
	assert.Equal(t, domain.LineKindModel, restored.Breakdown[0].Kind)

	assert.Equal(t, original.Inputs.Participants, restored.Inputs.Participants)
	require.NotNil(t, restored.Inputs.CostBand)
	assert.Equal(t, band, *restored.Inputs.CostBand)
	require.NotNil(t, restored.Inputs.MeanDailyCost)
	assert.True(t, mean.Equal(*restored.Inputs.MeanDailyCost))
	require.Len(t, restored.Inputs.CostOptions, 1)
	require.NotNil(t, restored.Inputs.CostOptions[0].Deposit)
	assert.True(t, deposit.Equal(*restored.Inputs.CostOptions[0].Deposit))
	assert.Nil(t, restored.Inputs.CostOptions[0].UtilitiesFlat)

	assert.True(t, restored.Scenarios.Worst.Equal(original.Scenarios.Worst))
}

func TestEncodeSnapshot_EmptyBreakdown(t *testing.T) {
	breakdown, _, _, err := encodeSnapshot(&domain.Quote{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(breakdown))
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	var q domain.Quote
	err := decodeSnapshot(&q, []byte(`{}`), []byte(`{}`), []byte(`{}`))
	assert.ErrorIs(t, err, ErrDecode)
}
