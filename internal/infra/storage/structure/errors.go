package structure

import "errors"

var (
	// ErrStructureNotFound возвращается, когда структура не найдена
	ErrStructureNotFound = errors.New("structure.repository: structure not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("structure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("structure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("structure.repository: failed to scan row")

	// ErrDecodeAgeRules возвращается, когда age_rules не удаётся разобрать
	ErrDecodeAgeRules = errors.New("structure.repository: failed to decode age rules")
)
