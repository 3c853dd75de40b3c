package check_occupancy

import "time"

// Request модель запроса на проверку занятости структуры
type Request struct {
	StructureID    int64     // ID структуры
	StartDate      time.Time // Начало диапазона (включительно)
	EndDate        time.Time // Конец диапазона (включительно)
	ExcludeEventID *int64    // Не учитывать бронирования этого мероприятия (опционально)
}

// Response модель ответа
type Response struct {
	StructureID int64
	StartDate   time.Time
	EndDate     time.Time
	Occupied    bool
	Conflicts   []Conflict
}

// Conflict подтверждённое бронирование, пересекающееся с диапазоном
type Conflict struct {
	BookingID int64
	EventID   int64
	StartDate time.Time
	EndDate   time.Time
}
