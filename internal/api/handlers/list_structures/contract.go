package list_structures

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

type StructureService interface {
	List(ctx context.Context, req *models.ListStructuresRequest) (*models.StructureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
