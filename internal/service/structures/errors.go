package structures

import "errors"

var (
	// ErrStructureNotFound возвращается, когда структура не найдена
	ErrStructureNotFound = errors.New("structure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
