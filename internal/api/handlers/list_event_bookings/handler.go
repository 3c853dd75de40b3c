package list_event_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings/models"
)

const (
	msgInvalidEventID = "некорректный ID мероприятия"
	msgInvalidStatus  = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/bookings - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	req := &models.ListEventBookingsRequest{EventID: eventID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListByEvent(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /events/{id}/bookings - Invalid status: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /events/{id}/bookings - Failed to get bookings: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/bookings - Bookings retrieved successfully: event_id=%d, count=%d",
		eventID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
