package suggest_structures

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/occupancy"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/suggest"
	eventRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/event"
)

// Limits ограничения на размер выдачи
type Limits struct {
	Default int
	Max     int
}

// UseCase use case для подбора структур под мероприятие
type UseCase struct {
	eventRepo     EventRepository
	structureRepo StructureRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	metrics       Metrics
	config        suggest.Config
	limits        Limits
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	structureRepo StructureRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	config suggest.Config,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:     eventRepo,
		structureRepo: structureRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		metrics:       metrics,
		config:        config,
		limits:        limits,
		logger:        logger,
	}
}

// Execute выполняет use case подбора структур
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestStructures: event=%d, limit=%v, excludeOccupied=%t", req.EventID, req.Limit, req.ExcludeOccupied)

	// 1. Валидация входных данных
	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	limit, err := uc.resolveLimit(req.Limit)
	if err != nil {
		uc.logger.Warn("SuggestStructures: %v", err)
		return nil, err
	}

	// 2. Читаем мероприятие, кандидатов и бронирования на одном снимке
	var (
		event      *domain.Event
		candidates []domain.Structure
		bookings   []*domain.Booking
	)
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		event, err = uc.eventRepo.GetByID(ctx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("SuggestStructures: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to get event: %v", err)
		}

		// 3. Получаем всех кандидатов
		candidates, err = uc.structureRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list structures: %v", err)
		}

		// 4. Получаем подтверждённые бронирования на даты мероприятия
		bookings, err = uc.bookingRepo.ListConfirmedInRange(ctx, event.Range())
		if err != nil {
			return fmt.Errorf("failed to list bookings: %v", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, err
		}
		uc.logger.Error("SuggestStructures: event=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Ранжируем; занятые структуры отсекаем до обрезки по лимиту
	rankLimit := limit
	if req.ExcludeOccupied {
		rankLimit = 0
	}
	suggestions := suggest.Suggest(event, candidates, rankLimit, uc.config)

	items := make([]Item, 0, min(limit, len(suggestions)))
	for _, s := range suggestions {
		occupied := occupancy.IsStructureOccupied(bookings, s.Structure.ID, event.Range(), &event.ID)
		if occupied && req.ExcludeOccupied {
			continue
		}
		items = append(items, toItem(s, occupied))
		if len(items) == limit {
			break
		}
	}

	uc.metrics.ObserveSuggestions(len(items))
	uc.logger.Info("SuggestStructures: event=%d, %d of %d structures suggested", event.ID, len(items), len(candidates))

	return &Response{
		EventID: event.ID,
		Season:  domain.SeasonForDate(event.StartDate),
		Limit:   limit,
		Items:   items,
	}, nil
}

// resolveLimit применяет значение по умолчанию и верхнюю границу
func (uc *UseCase) resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return uc.limits.Default, nil
	}
	if *limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	if uc.limits.Max > 0 && *limit > uc.limits.Max {
		return uc.limits.Max, nil
	}
	return *limit, nil
}

func toItem(s suggest.Suggestion, occupied bool) Item {
	return Item{
		StructureID:   s.Structure.ID,
		Name:          s.Structure.Name,
		Type:          s.Structure.Type,
		Coordinates:   s.Structure.Coordinates,
		IndoorBeds:    s.Structure.IndoorBeds,
		TentPitches:   s.Structure.TentPitches,
		DistanceKm:    s.DistanceKm,
		EstimatedCost: s.EstimatedCost,
		CostBand:      s.CostBand,
		Occupied:      occupied,
	}
}
