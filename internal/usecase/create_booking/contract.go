package create_booking

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListConfirmedOverlapping(ctx context.Context, structureID int64, rng domain.DateRange) ([]*domain.Booking, error)
}

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// StructureRepository интерфейс репозитория структур
type StructureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Structure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
