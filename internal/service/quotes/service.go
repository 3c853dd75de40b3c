package quotes

import (
	"context"
	"errors"
	"fmt"

	quoteRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/quote"
	"github.com/m04kA/SMC-StructureBooking/internal/service/quotes/models"
)

// Service сервис чтения сохранённых смет
type Service struct {
	quoteRepo QuoteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смет
func NewService(quoteRepo QuoteRepository, logger Logger) *Service {
	return &Service{
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

// GetByID получает смету по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.QuoteResponse, error) {
	s.logger.Info("GetByID: fetching quote id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: quoteID must be positive", ErrInvalidInput)
	}

	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("GetByID: quote id=%d not found", id)
			return nil, ErrQuoteNotFound
		}
		s.logger.Error("GetByID: repository error for quote id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuote(q), nil
}

// ListByEvent получает все сметы мероприятия, от новых к старым
func (s *Service) ListByEvent(ctx context.Context, eventID int64) (*models.QuoteListResponse, error) {
	s.logger.Info("ListByEvent: fetching quotes for event=%d", eventID)

	if eventID <= 0 {
		return nil, fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	list, err := s.quoteRepo.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("ListByEvent: repository error for event=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEvent: successfully fetched %d quotes for event=%d", len(list), eventID)
	return models.FromDomainQuoteList(list), nil
}
