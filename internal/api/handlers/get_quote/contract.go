package get_quote

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/service/quotes/models"
)

type QuoteService interface {
	GetByID(ctx context.Context, id int64) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
