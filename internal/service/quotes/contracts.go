package quotes

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// QuoteRepository интерфейс репозитория смет
type QuoteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Quote, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
