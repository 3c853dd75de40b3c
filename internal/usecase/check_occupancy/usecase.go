package check_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/occupancy"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
)

// UseCase use case для проверки занятости структуры на диапазон дат
type UseCase struct {
	structureRepo StructureRepository
	bookingRepo   BookingRepository
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	structureRepo StructureRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		structureRepo: structureRepo,
		bookingRepo:   bookingRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case проверки занятости
// Результат носит справочный характер: окончательная проверка выполняется при подтверждении бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOccupancy: structure=%d, range=%s..%s, excludeEvent=%v",
		req.StructureID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.ExcludeEventID)

	// 1. Валидация входных данных
	if req.StructureID <= 0 {
		return nil, fmt.Errorf("%w: structureID must be positive", ErrInvalidInput)
	}

	rng := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	if !rng.IsValid() {
		uc.logger.Warn("CheckOccupancy: invalid range %s..%s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	// 2. Проверяем существование структуры
	if _, err := uc.structureRepo.GetByID(ctx, req.StructureID); err != nil {
		if errors.Is(err, structureRepo.ErrStructureNotFound) {
			uc.logger.Warn("CheckOccupancy: structure id=%d not found", req.StructureID)
			return nil, ErrStructureNotFound
		}
		uc.logger.Error("CheckOccupancy: failed to get structure id=%d: %v", req.StructureID, err)
		return nil, fmt.Errorf("%w: failed to get structure: %v", ErrInternal, err)
	}

	// 3. Получаем подтверждённые бронирования, пересекающиеся с диапазоном
	bookings, err := uc.bookingRepo.ListConfirmedOverlapping(ctx, req.StructureID, rng)
	if err != nil {
		uc.logger.Error("CheckOccupancy: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Применяем предикат пересечения
	found := occupancy.Conflicts(bookings, req.StructureID, rng, req.ExcludeEventID)

	conflicts := make([]Conflict, 0, len(found))
	for _, b := range found {
		conflicts = append(conflicts, Conflict{
			BookingID: b.ID,
			EventID:   b.EventID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		})
	}

	occupied := len(conflicts) > 0
	uc.metrics.IncOccupancyCheck(occupied)

	uc.logger.Info("CheckOccupancy: structure=%d occupied=%t (%d conflicts)", req.StructureID, occupied, len(conflicts))

	return &Response{
		StructureID: req.StructureID,
		StartDate:   domain.DateOnly(req.StartDate),
		EndDate:     domain.DateOnly(req.EndDate),
		Occupied:    occupied,
		Conflicts:   conflicts,
	}, nil
}
