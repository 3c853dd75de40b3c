package suggest_structures

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	suggestStructures "github.com/m04kA/SMC-StructureBooking/internal/usecase/suggest_structures"
)

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	EventID int64                `json:"eventId"`
	Season  string               `json:"season"`
	Limit   int                  `json:"limit"`
	Items   []SuggestionResponse `json:"items"`
}

// SuggestionResponse структура-кандидат
type SuggestionResponse struct {
	StructureID   int64    `json:"structureId"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IndoorBeds    *int     `json:"indoorBeds,omitempty"`
	TentPitches   *int     `json:"tentPitches,omitempty"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
	EstimatedCost *string  `json:"estimatedDailyCost,omitempty"`
	CostBand      *string  `json:"costBand,omitempty"`
	Occupied      bool     `json:"occupied"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(eventID int64, limitStr, excludeOccupiedStr string) (*suggestStructures.Request, error) {
	req := &suggestStructures.Request{EventID: eventID}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("limit: %w", err)
		}
		req.Limit = &limit
	}

	if excludeOccupiedStr != "" {
		exclude, err := strconv.ParseBool(excludeOccupiedStr)
		if err != nil {
			return nil, fmt.Errorf("excludeOccupied: %w", err)
		}
		req.ExcludeOccupied = exclude
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestStructures.Response) *SuggestionsResponse {
	out := &SuggestionsResponse{
		EventID: resp.EventID,
		Season:  string(resp.Season),
		Limit:   resp.Limit,
		Items:   make([]SuggestionResponse, 0, len(resp.Items)),
	}

	for _, item := range resp.Items {
		s := SuggestionResponse{
			StructureID: item.StructureID,
			Name:        item.Name,
			Type:        string(item.Type),
			IndoorBeds:  item.IndoorBeds,
			TentPitches: item.TentPitches,
			DistanceKm:  item.DistanceKm,
			Occupied:    item.Occupied,
		}
		if item.Coordinates != nil {
			lat, lon := item.Coordinates.Latitude, item.Coordinates.Longitude
			s.Latitude = &lat
			s.Longitude = &lon
		}
		if item.EstimatedCost != nil {
			cost := item.EstimatedCost.StringFixed(domain.MoneyPlaces)
			s.EstimatedCost = &cost
		}
		if item.CostBand != nil {
			band := string(*item.CostBand)
			s.CostBand = &band
		}
		out.Items = append(out.Items, s)
	}

	return out
}
