package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-StructureBooking/internal/usecase/confirm_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgAlreadyConfirmed  = "бронирование уже подтверждено"
	msgCannotConfirm     = "бронирование не может быть подтверждено в текущем статусе"
	msgStructureOccupied = "структура уже подтверждена за другим мероприятием на эти даты"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{BookingID: bookingID})
	if err != nil {
		var conflict *confirmBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Structure occupied: booking_id=%d, conflicting_booking_id=%d",
				bookingID, conflict.BookingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:               http.StatusConflict,
				Message:            msgStructureOccupied,
				ConflictingBooking: conflict.BookingID,
				ConflictingEvent:   conflict.EventID,
			})

		case errors.Is(err, confirmBooking.ErrStructureOccupied):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Structure occupied: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgStructureOccupied)

		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrAlreadyConfirmed):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Already confirmed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmBooking.ErrCannotConfirm):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Cannot confirm: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		default:
			h.logger.Error("PATCH /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/confirm - Booking confirmed: booking_id=%d, structure_id=%d",
		bookingID, result.StructureID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
