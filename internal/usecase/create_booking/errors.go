package create_booking

import "errors"

var (
	// ErrEventNotFound возвращается, когда мероприятие не найдено
	ErrEventNotFound = errors.New("create_booking: event not found")

	// ErrStructureNotFound возвращается, когда структура не найдена
	ErrStructureNotFound = errors.New("create_booking: structure not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("create_booking: end date must not be before start date")

	// ErrInvalidStatus возвращается, когда начальный статус не pending и не option
	ErrInvalidStatus = errors.New("create_booking: initial status must be pending or option")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
