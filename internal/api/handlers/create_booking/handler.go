package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-StructureBooking/internal/usecase/create_booking"
)

const (
	msgInvalidEventID     = "некорректный ID мероприятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата выезда не может быть раньше даты заезда"
	msgInvalidStatus      = "начальный статус может быть только pending или option"
	msgInvalidInput       = "некорректные входные данные"
	msgEventNotFound      = "мероприятие не найдено"
	msgStructureNotFound  = "структура не найдена"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(eventID)
	if err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/bookings - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, createBooking.ErrStructureNotFound):
			h.logger.Warn("POST /events/{id}/bookings - Structure not found: structure_id=%d", req.StructureID)
			handlers.RespondNotFound(w, msgStructureNotFound)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /events/{id}/bookings - Invalid range: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			h.logger.Warn("POST /events/{id}/bookings - Invalid status: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/{id}/bookings - Failed to create booking: event_id=%d, structure_id=%d, error=%v",
				eventID, req.StructureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/bookings - Booking created successfully: booking_id=%d, event_id=%d, occupied=%t",
		result.ID, eventID, result.Occupied)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
