package list_structures

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса: season (winter|spring|summer|autumn), unit (LC|EG|RS|CC|ALL)"
)

type Handler struct {
	service StructureService
	logger  Logger
}

func NewHandler(service StructureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/structures
// Query params: season, unit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListStructuresRequest{}
	if season := query.Get("season"); season != "" {
		req.Season = &season
	}
	if unit := query.Get("unit"); unit != "" {
		req.Unit = &unit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, structures.ErrInvalidInput):
			h.logger.Warn("GET /structures - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /structures - Failed to list structures: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /structures - Structures retrieved successfully: count=%d", len(result.Structures))
	handlers.RespondJSON(w, http.StatusOK, result.Structures)
}
