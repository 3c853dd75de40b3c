package check_occupancy

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	checkOccupancy "github.com/m04kA/SMC-StructureBooking/internal/usecase/check_occupancy"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	StructureID int64              `json:"structureId"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Occupied    bool               `json:"occupied"`
	Conflicts   []ConflictResponse `json:"conflicts"`
}

// ConflictResponse подтверждённое бронирование, пересекающееся с диапазоном
type ConflictResponse struct {
	BookingID int64  `json:"bookingId"`
	EventID   int64  `json:"eventId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(structureID int64, startStr, endStr, excludeEventStr string) (*checkOccupancy.Request, error) {
	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	req := &checkOccupancy.Request{
		StructureID: structureID,
		StartDate:   start,
		EndDate:     end,
	}

	if excludeEventStr != "" {
		eventID, err := strconv.ParseInt(excludeEventStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("excludeEventId: %w", err)
		}
		req.ExcludeEventID = &eventID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkOccupancy.Response) *OccupancyResponse {
	out := &OccupancyResponse{
		StructureID: resp.StructureID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Occupied:    resp.Occupied,
		Conflicts:   make([]ConflictResponse, 0, len(resp.Conflicts)),
	}
	for _, c := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictResponse{
			BookingID: c.BookingID,
			EventID:   c.EventID,
			StartDate: c.StartDate.Format(domain.DateFormat),
			EndDate:   c.EndDate.Format(domain.DateFormat),
		})
	}
	return out
}
