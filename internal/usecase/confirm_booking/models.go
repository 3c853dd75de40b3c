package confirm_booking

import "time"

// Request модель запроса на подтверждение бронирования
type Request struct {
	BookingID int64 // ID бронирования
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	ID          int64
	EventID     int64
	StructureID int64
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	Notes       *string
	ConfirmedAt time.Time
}

// ConflictError описывает бронирование, из-за которого подтверждение невозможно
type ConflictError struct {
	BookingID int64
	EventID   int64
}

func (e *ConflictError) Error() string {
	return ErrStructureOccupied.Error()
}

// Unwrap позволяет сравнивать ошибку через errors.Is(err, ErrStructureOccupied)
func (e *ConflictError) Unwrap() error {
	return ErrStructureOccupied
}
