package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StructureBooking/internal/service/quotes"
)

const (
	msgInvalidQuoteID = "некорректный ID сметы"
	msgNotFound       = "смета не найдена"
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

// Handle GET /api/v1/quotes/{quoteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quoteID, err := strconv.ParseInt(mux.Vars(r)["quoteId"], 10, 64)
	if err != nil || quoteID <= 0 {
		h.logger.Warn("GET /quotes/{id} - Invalid quote ID: %s", mux.Vars(r)["quoteId"])
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	quote, err := h.service.GetByID(r.Context(), quoteID)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrQuoteNotFound):
			h.logger.Warn("GET /quotes/{id} - Quote not found: quote_id=%d", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /quotes/{id} - Failed to get quote: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quotes/{id} - Quote retrieved successfully: quote_id=%d", quoteID)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
