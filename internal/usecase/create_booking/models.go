package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	EventID     int64      // ID мероприятия
	StructureID int64      // ID структуры
	StartDate   *time.Time // Дата заезда (по умолчанию дата начала мероприятия)
	EndDate     *time.Time // Дата выезда (по умолчанию дата окончания мероприятия)
	Status      *string    // Начальный статус: pending (по умолчанию) или option
	Notes       *string    // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	EventID     int64
	StructureID int64
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	Notes       *string

	// Occupied true, если на эти даты структура уже подтверждена за другим мероприятием.
	// Бронирование всё равно создаётся, но подтвердить его не получится
	Occupied bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
