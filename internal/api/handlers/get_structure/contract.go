package get_structure

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

type StructureService interface {
	GetByID(ctx context.Context, id int64) (*models.StructureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
