package calculate_quote

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// StructureRepository интерфейс репозитория структур
type StructureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Structure, error)
}

// QuoteRepository интерфейс репозитория смет
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncQuoteCalculated(costBand string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
