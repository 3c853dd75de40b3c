package calculate_quote

import "errors"

var (
	// ErrEventNotFound возвращается, когда мероприятие не найдено
	ErrEventNotFound = errors.New("calculate_quote: event not found")

	// ErrStructureNotFound возвращается, когда структура не найдена
	ErrStructureNotFound = errors.New("calculate_quote: structure not found")

	// ErrInvalidOverride возвращается при некорректных переопределениях (участники, дни, ночи)
	ErrInvalidOverride = errors.New("calculate_quote: invalid override")

	// ErrInvalidEventWindow возвращается, когда даты мероприятия не дают ни одной ночи
	ErrInvalidEventWindow = errors.New("calculate_quote: invalid event window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_quote: internal error")
)
