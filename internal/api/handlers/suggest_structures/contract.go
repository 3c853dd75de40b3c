package suggest_structures

import (
	"context"

	suggestStructures "github.com/m04kA/SMC-StructureBooking/internal/usecase/suggest_structures"
)

type SuggestStructuresUseCase interface {
	Execute(ctx context.Context, req *suggestStructures.Request) (*suggestStructures.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
