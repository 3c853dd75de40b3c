package suggest_structures

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// StructureRepository интерфейс репозитория структур
type StructureRepository interface {
	List(ctx context.Context) ([]domain.Structure, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListConfirmedInRange(ctx context.Context, rng domain.DateRange) ([]*domain.Booking, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ObserveSuggestions(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
