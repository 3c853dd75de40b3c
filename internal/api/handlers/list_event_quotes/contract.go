package list_event_quotes

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/service/quotes/models"
)

type QuoteService interface {
	ListByEvent(ctx context.Context, eventID int64) (*models.QuoteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
