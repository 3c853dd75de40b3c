package check_occupancy

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// StructureRepository интерфейс репозитория структур
type StructureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Structure, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListConfirmedOverlapping(ctx context.Context, structureID int64, rng domain.DateRange) ([]*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncOccupancyCheck(occupied bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
