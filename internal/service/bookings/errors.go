package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или отклонено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotReject возвращается, когда бронирование нельзя отклонить (уже подтверждено или закрыто)
	ErrCannotReject = errors.New("booking cannot be rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
