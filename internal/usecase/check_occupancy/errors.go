package check_occupancy

import "errors"

var (
	// ErrStructureNotFound возвращается, когда структура не найдена
	ErrStructureNotFound = errors.New("check_occupancy: structure not found")

	// ErrInvalidRange возвращается, когда диапазон дат некорректен
	ErrInvalidRange = errors.New("check_occupancy: end date must not be before start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_occupancy: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_occupancy: internal error")
)
