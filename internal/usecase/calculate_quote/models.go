package calculate_quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// Request модель запроса на расчёт сметы
type Request struct {
	EventID     int64            // ID мероприятия
	StructureID int64            // ID структуры
	Overrides   map[string]any   // Переопределения: participants, days, nights (опционально)
	MarginBest  *decimal.Decimal // Скидка лучшего сценария (опционально, по умолчанию из конфига)
	MarginWorst *decimal.Decimal // Наценка худшего сценария (опционально, по умолчанию из конфига)
}

// Response модель ответа с сохранённой сметой
type Response struct {
	ID          int64
	Reference   uuid.UUID
	EventID     int64
	StructureID int64
	Currency    string
	Totals      domain.QuoteTotals
	Breakdown   []domain.BreakdownLine
	Inputs      domain.QuoteInputs
	Scenarios   domain.Scenarios
	CreatedAt   time.Time
}

func fromDomain(q *domain.Quote) *Response {
	return &Response{
		ID:          q.ID,
		Reference:   q.Reference,
		EventID:     q.EventID,
		StructureID: q.StructureID,
		Currency:    q.Currency,
		Totals:      q.Totals,
		Breakdown:   q.Breakdown,
		Inputs:      q.Inputs,
		Scenarios:   q.Scenarios,
		CreatedAt:   q.CreatedAt,
	}
}
