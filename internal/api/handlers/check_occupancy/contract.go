package check_occupancy

import (
	"context"

	checkOccupancy "github.com/m04kA/SMC-StructureBooking/internal/usecase/check_occupancy"
)

type CheckOccupancyUseCase interface {
	Execute(ctx context.Context, req *checkOccupancy.Request) (*checkOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
