package suggest_structures

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
)

// Request модель запроса на подбор структур
type Request struct {
	EventID         int64 // ID мероприятия
	Limit           *int  // Количество результатов (опционально, по умолчанию из конфига)
	ExcludeOccupied bool  // Исключить структуры, занятые на даты мероприятия
}

// Response модель ответа с ранжированным списком структур
type Response struct {
	EventID int64
	Season  domain.Season
	Limit   int
	Items   []Item
}

// Item структура-кандидат
type Item struct {
	StructureID   int64
	Name          string
	Type          domain.StructureType
	Coordinates   *geo.Point
	IndoorBeds    *int
	TentPitches   *int
	DistanceKm    *float64
	EstimatedCost *decimal.Decimal
	CostBand      *domain.CostBand
	Occupied      bool // Есть подтверждённое бронирование другого мероприятия на эти даты
}
