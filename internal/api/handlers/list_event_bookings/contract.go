package list_event_bookings

import (
	"context"

	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListByEvent(ctx context.Context, req *models.ListEventBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
