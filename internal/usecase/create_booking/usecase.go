package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/occupancy"
	eventRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/event"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
)

// UseCase use case для создания бронирования структуры под мероприятие
type UseCase struct {
	bookingRepo   BookingRepository
	eventRepo     EventRepository
	structureRepo StructureRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	structureRepo StructureRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		eventRepo:     eventRepo,
		structureRepo: structureRepo,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Новое бронирование не занимает структуру: занятость проверяется при подтверждении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: event=%d, structure=%d", req.EventID, req.StructureID)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мероприятие
	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("CreateBooking: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("CreateBooking: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 3. Проверяем существование структуры
	if _, err := uc.structureRepo.GetByID(ctx, req.StructureID); err != nil {
		if errors.Is(err, structureRepo.ErrStructureNotFound) {
			uc.logger.Warn("CreateBooking: structure id=%d not found", req.StructureID)
			return nil, ErrStructureNotFound
		}
		uc.logger.Error("CreateBooking: failed to get structure id=%d: %v", req.StructureID, err)
		return nil, fmt.Errorf("%w: failed to get structure: %v", ErrInternal, err)
	}

	// 4. Определяем диапазон дат
	rng, err := resolveRange(req, event)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Проверяем занятость (только как предупреждение)
	confirmed, err := uc.bookingRepo.ListConfirmedOverlapping(ctx, req.StructureID, rng)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list confirmed bookings: %v", ErrInternal, err)
	}
	occupied := occupancy.IsStructureOccupied(confirmed, req.StructureID, rng, &event.ID)
	if occupied {
		uc.logger.Warn("CreateBooking: structure=%d already confirmed for another event in %s..%s",
			req.StructureID, rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat))
	}

	// 6. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		EventID:     event.ID,
		StructureID: req.StructureID,
		StartDate:   rng.Start,
		EndDate:     rng.End,
		Status:      status,
		Notes:       req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (status=%s)", created.ID, created.Status)

	return &Response{
		ID:          created.ID,
		EventID:     created.EventID,
		StructureID: created.StructureID,
		StartDate:   created.StartDate,
		EndDate:     created.EndDate,
		Status:      string(created.Status),
		Notes:       created.Notes,
		Occupied:    occupied,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}
