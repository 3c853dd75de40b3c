package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrAlreadyConfirmed возвращается, когда бронирование уже подтверждено
	ErrAlreadyConfirmed = errors.New("confirm_booking: booking is already confirmed")

	// ErrCannotConfirm возвращается, когда бронирование отклонено или отменено
	ErrCannotConfirm = errors.New("confirm_booking: booking cannot be confirmed in its current status")

	// ErrStructureOccupied возвращается, когда структура уже занята подтверждённым бронированием
	ErrStructureOccupied = errors.New("confirm_booking: structure is already booked for an overlapping range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
