package calculate_quote

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/service/quotes/models"
	calculateQuote "github.com/m04kA/SMC-StructureBooking/internal/usecase/calculate_quote"
)

// CalculateQuoteRequest HTTP request model
type CalculateQuoteRequest struct {
	StructureID int64          `json:"structureId"`
	Overrides   map[string]any `json:"overrides,omitempty"`   // {"participants": {...}, "days": 3, "nights": 2}
	MarginBest  *string        `json:"marginBest,omitempty"`  // "0.05"
	MarginWorst *string        `json:"marginWorst,omitempty"` // "0.10"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculateQuoteRequest) ToUseCaseRequest(eventID int64) (*calculateQuote.Request, error) {
	best, err := parseMargin(r.MarginBest)
	if err != nil {
		return nil, err
	}
	worst, err := parseMargin(r.MarginWorst)
	if err != nil {
		return nil, err
	}

	return &calculateQuote.Request{
		EventID:     eventID,
		StructureID: r.StructureID,
		Overrides:   r.Overrides,
		MarginBest:  best,
		MarginWorst: worst,
	}, nil
}

func parseMargin(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateQuote.Response) *models.QuoteResponse {
	return models.FromDomainQuote(&domain.Quote{
		ID:          resp.ID,
		Reference:   resp.Reference,
		EventID:     resp.EventID,
		StructureID: resp.StructureID,
		Currency:    resp.Currency,
		Totals:      resp.Totals,
		Breakdown:   resp.Breakdown,
		Inputs:      resp.Inputs,
		Scenarios:   resp.Scenarios,
		CreatedAt:   resp.CreatedAt,
	})
}
