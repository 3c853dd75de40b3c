package list_event_quotes

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
)

const (
	msgInvalidEventID = "некорректный ID мероприятия"
)

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		h.logger.Warn("GET /events/{id}/quotes - Invalid event ID: %s", mux.Vars(r)["eventId"])
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.ListByEvent(r.Context(), eventID)
	if err != nil {
		h.logger.Error("GET /events/{id}/quotes - Failed to list quotes: event_id=%d, error=%v", eventID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /events/{id}/quotes - Quotes retrieved successfully: event_id=%d, count=%d",
		eventID, len(result.Quotes))
	handlers.RespondJSON(w, http.StatusOK, result.Quotes)
}
