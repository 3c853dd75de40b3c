package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	confirmBooking "github.com/m04kA/SMC-StructureBooking/internal/usecase/confirm_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"eventId"`
	StructureID int64   `json:"structureId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	ConfirmedAt string  `json:"confirmedAt"`
}

// ConflictResponse тело ответа 409 с бронированием, занявшим структуру
type ConflictResponse struct {
	Code               int    `json:"code"`
	Message            string `json:"message"`
	ConflictingBooking int64  `json:"conflictingBookingId"`
	ConflictingEvent   int64  `json:"conflictingEventId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		EventID:     resp.EventID,
		StructureID: resp.StructureID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Status:      resp.Status,
		Notes:       resp.Notes,
		ConfirmedAt: resp.ConfirmedAt.Format(time.RFC3339),
	}
}
