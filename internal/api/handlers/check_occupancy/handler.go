package check_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StructureBooking/internal/api/handlers"
	checkOccupancy "github.com/m04kA/SMC-StructureBooking/internal/usecase/check_occupancy"
)

const (
	msgInvalidStructureID = "некорректный ID структуры"
	msgInvalidParams      = "некорректные параметры запроса, ожидаются start и end в формате YYYY-MM-DD"
	msgInvalidRange       = "дата окончания не может быть раньше даты начала"
	msgStructureNotFound  = "структура не найдена"
)

type Handler struct {
	useCase CheckOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase CheckOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/structures/{structureId}/occupancy
// Query params: start, end (обязательно), excludeEventId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	structureID, err := strconv.ParseInt(mux.Vars(r)["structureId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /structures/{id}/occupancy - Invalid structure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStructureID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(structureID, query.Get("start"), query.Get("end"), query.Get("excludeEventId"))
	if err != nil {
		h.logger.Warn("GET /structures/{id}/occupancy - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkOccupancy.ErrStructureNotFound):
			h.logger.Warn("GET /structures/{id}/occupancy - Structure not found: structure_id=%d", structureID)
			handlers.RespondNotFound(w, msgStructureNotFound)

		case errors.Is(err, checkOccupancy.ErrInvalidRange):
			h.logger.Warn("GET /structures/{id}/occupancy - Invalid range: structure_id=%d", structureID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /structures/{id}/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStructureID)

		default:
			h.logger.Error("GET /structures/{id}/occupancy - Failed to check occupancy: structure_id=%d, error=%v",
				structureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /structures/{id}/occupancy - Occupancy checked: structure_id=%d, occupied=%t",
		structureID, result.Occupied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
