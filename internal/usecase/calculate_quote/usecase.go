package calculate_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/quote"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/scenario"
	eventRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/event"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
)

// UseCase use case для расчёта и сохранения сметы
type UseCase struct {
	eventRepo     EventRepository
	structureRepo StructureRepository
	quoteRepo     QuoteRepository
	txManager     TransactionManager
	metrics       Metrics
	quoteConfig   quote.Config
	margins       scenario.Margins
	newReference  func() uuid.UUID
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	structureRepo StructureRepository,
	quoteRepo QuoteRepository,
	txManager TransactionManager,
	metrics Metrics,
	quoteConfig quote.Config,
	margins scenario.Margins,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:     eventRepo,
		structureRepo: structureRepo,
		quoteRepo:     quoteRepo,
		txManager:     txManager,
		metrics:       metrics,
		quoteConfig:   quoteConfig,
		margins:       margins,
		newReference:  uuid.New,
		logger:        logger,
	}
}

// Execute выполняет use case расчёта сметы
// Смета считается по данным, загруженным целиком до расчёта, и сохраняется вместе со снимком входных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: event=%d, structure=%d", req.EventID, req.StructureID)

	// 1. Валидация входных данных
	if req.EventID <= 0 || req.StructureID <= 0 {
		uc.logger.Warn("CalculateQuote: invalid ids event=%d, structure=%d", req.EventID, req.StructureID)
		return nil, fmt.Errorf("%w: eventID and structureID must be positive", ErrInvalidInput)
	}

	margins := uc.margins
	if req.MarginBest != nil {
		margins.Best = *req.MarginBest
	}
	if req.MarginWorst != nil {
		margins.Worst = *req.MarginWorst
	}
	if err := margins.Validate(); err != nil {
		uc.logger.Warn("CalculateQuote: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Нормализуем переопределения
	overrides, err := quote.ParseOverrides(req.Overrides)
	if err != nil {
		uc.logger.Warn("CalculateQuote: unsupported overrides: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidOverride, err)
	}

	// 3. Читаем мероприятие и структуру с вложенными коллекциями на одном снимке
	var (
		event     *domain.Event
		structure *domain.Structure
	)
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		event, err = uc.eventRepo.GetByID(ctx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("CalculateQuote: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to get event id=%d: %v", req.EventID, err)
		}

		// 4. Получаем структуру с вариантами стоимости
		structure, err = uc.structureRepo.GetByID(ctx, req.StructureID)
		if err != nil {
			if errors.Is(err, structureRepo.ErrStructureNotFound) {
				uc.logger.Warn("CalculateQuote: structure id=%d not found", req.StructureID)
				return ErrStructureNotFound
			}
			return fmt.Errorf("failed to get structure id=%d: %v", req.StructureID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrStructureNotFound) {
			return nil, err
		}
		uc.logger.Error("CalculateQuote: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Считаем смету
	result, err := quote.Calculate(event, structure, overrides, uc.quoteConfig)
	if err != nil {
		uc.logger.Warn("CalculateQuote: calculation rejected for event=%d, structure=%d: %v",
			req.EventID, req.StructureID, err)
		switch {
		case errors.Is(err, quote.ErrInvalidEventWindow):
			return nil, fmt.Errorf("%w: %w", ErrInvalidEventWindow, err)
		case errors.Is(err, quote.ErrInvalidOverride):
			return nil, fmt.Errorf("%w: %w", ErrInvalidOverride, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	// 6. Сохраняем смету со сценариями
	q := &domain.Quote{
		Reference:   uc.newReference(),
		EventID:     event.ID,
		StructureID: structure.ID,
		Currency:    result.Currency,
		Totals:      result.Totals,
		Breakdown:   result.Breakdown,
		Inputs:      result.Inputs,
		Scenarios:   scenario.Apply(result.Totals.Total, margins),
	}

	created, err := uc.quoteRepo.Create(ctx, q)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to save quote: %v", err)
		return nil, fmt.Errorf("%w: failed to save quote: %v", ErrInternal, err)
	}

	band := ""
	if created.Inputs.CostBand != nil {
		band = string(*created.Inputs.CostBand)
	}
	uc.metrics.IncQuoteCalculated(band)

	uc.logger.Info("CalculateQuote: saved quote id=%d, reference=%s, total=%s %s",
		created.ID, created.Reference, created.Totals.Total.StringFixed(domain.MoneyPlaces), created.Currency)

	return fromDomain(created), nil
}
