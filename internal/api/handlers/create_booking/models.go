package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StructureBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StructureID int64   `json:"structureId"`
	StartDate   *string `json:"startDate,omitempty"` // "2025-07-10", по умолчанию дата начала мероприятия
	EndDate     *string `json:"endDate,omitempty"`   // "2025-07-17", по умолчанию дата окончания мероприятия
	Status      *string `json:"status,omitempty"`    // pending | option
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"eventId"`
	StructureID int64   `json:"structureId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	Occupied    bool    `json:"occupied"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(eventID int64) (*createBooking.Request, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EventID:     eventID,
		StructureID: r.StructureID,
		StartDate:   start,
		EndDate:     end,
		Status:      r.Status,
		Notes:       r.Notes,
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		EventID:     resp.EventID,
		StructureID: resp.StructureID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Status:      resp.Status,
		Notes:       resp.Notes,
		Occupied:    resp.Occupied,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
