package calculate_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	calculateQuote "github.com/m04kA/SMC-StructureBooking/internal/usecase/calculate_quote"
)

const (
	msgInvalidEventID     = "некорректный ID мероприятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMargin      = "некорректное значение маржи, ожидается десятичное число"
	msgEventNotFound      = "мероприятие не найдено"
	msgStructureNotFound  = "структура не найдена"
	msgInvalidOverride    = "некорректные переопределения участников или длительности"
	msgInvalidEventWindow = "дата окончания мероприятия должна быть позже даты начала"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/quotes - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req CalculateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(eventID)
	if err != nil {
		h.logger.Warn("POST /events/{id}/quotes - Invalid margin: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMargin)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/quotes - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, calculateQuote.ErrStructureNotFound):
			h.logger.Warn("POST /events/{id}/quotes - Structure not found: structure_id=%d", req.StructureID)
			handlers.RespondNotFound(w, msgStructureNotFound)

		case errors.Is(err, calculateQuote.ErrInvalidOverride):
			h.logger.Warn("POST /events/{id}/quotes - Invalid override: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidOverride)

		case errors.Is(err, calculateQuote.ErrInvalidEventWindow):
			h.logger.Warn("POST /events/{id}/quotes - Invalid event window: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgInvalidEventWindow)

		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/quotes - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/{id}/quotes - Failed to calculate quote: event_id=%d, structure_id=%d, error=%v",
				eventID, req.StructureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/quotes - Quote calculated: quote_id=%d, event_id=%d, total=%s",
		result.ID, eventID, result.Totals.Total.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
