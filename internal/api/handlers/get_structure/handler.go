package get_structure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures"
)

const (
	msgInvalidStructureID = "некорректный ID структуры"
	msgNotFound           = "структура не найдена"
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

// Handle GET /api/v1/structures/{structureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	structureID, err := strconv.ParseInt(mux.Vars(r)["structureId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /structures/{id} - Invalid structure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStructureID)
		return
	}

	structure, err := h.service.GetByID(r.Context(), structureID)
	if err != nil {
		switch {
		case errors.Is(err, structures.ErrStructureNotFound):
			h.logger.Warn("GET /structures/{id} - Structure not found: structure_id=%d", structureID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, structures.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStructureID)

		default:
			h.logger.Error("GET /structures/{id} - Failed to get structure: structure_id=%d, error=%v", structureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /structures/{id} - Structure retrieved successfully: structure_id=%d", structureID)
	handlers.RespondJSON(w, http.StatusOK, structure)
}
