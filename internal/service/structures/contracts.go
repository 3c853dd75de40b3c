package structures

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// StructureRepository интерфейс репозитория структур
type StructureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Structure, error)
	List(ctx context.Context) ([]domain.Structure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
