package event

import "errors"

var (
	// ErrEventNotFound возвращается, когда мероприятие не найдено
	ErrEventNotFound = errors.New("event.repository: event not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("event.repository: failed to scan row")

	// ErrDecodeParticipants возвращается, когда participants не удаётся разобрать
	ErrDecodeParticipants = errors.New("event.repository: failed to decode participants")
)
