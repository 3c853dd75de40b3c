package suggest_structures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	suggestStructures "github.com/m04kA/SMC-StructureBooking/internal/usecase/suggest_structures"
)

const (
	msgInvalidEventID = "некорректный ID мероприятия"
	msgInvalidParams  = "некорректные параметры запроса"
	msgEventNotFound  = "мероприятие не найдено"
)

type Handler struct {
	useCase SuggestStructuresUseCase
	logger  Logger
}

func NewHandler(useCase SuggestStructuresUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/suggestions
// Query params: limit, excludeOccupied (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/suggestions - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(eventID, query.Get("limit"), query.Get("excludeOccupied"))
	if err != nil {
		h.logger.Warn("GET /events/{id}/suggestions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestStructures.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/suggestions - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, suggestStructures.ErrInvalidInput):
			h.logger.Warn("GET /events/{id}/suggestions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /events/{id}/suggestions - Failed to suggest structures: event_id=%d, error=%v",
				eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/suggestions - Suggestions built: event_id=%d, count=%d",
		eventID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
