package structures

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/suggest"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
	"github.com/m04kA/SMC-StructureBooking/internal/service/structures/models"
)

// Service сервис каталога структур
type Service struct {
	structureRepo StructureRepository
	thresholds    costband.Thresholds
	logger        Logger
}

// NewService создает новый экземпляр сервиса структур
func NewService(
	structureRepo StructureRepository,
	thresholds costband.Thresholds,
	logger Logger,
) *Service {
	return &Service{
		structureRepo: structureRepo,
		thresholds:    thresholds,
		logger:        logger,
	}
}

// GetByID получает структуру со всеми ценовыми опциями и сезонами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StructureResponse, error) {
	s.logger.Info("GetByID: fetching structure id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: structureID must be positive", ErrInvalidInput)
	}

	structure, err := s.structureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structureRepo.ErrStructureNotFound) {
			s.logger.Warn("GetByID: structure id=%d not found", id)
			return nil, ErrStructureNotFound
		}
		s.logger.Error("GetByID: repository error for structure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStructure(structure, s.thresholds), nil
}

// List получает структуры, доступные в сезоне и/или для подразделения
// Фильтры опциональны: без фильтров возвращается весь каталог
func (s *Service) List(ctx context.Context, req *models.ListStructuresRequest) (*models.StructureListResponse, error) {
	s.logger.Info("List: fetching structures, season=%v, unit=%v", req.Season, req.Unit)

	season, unit, err := req.ToDomainFilters()
	if err != nil {
		s.logger.Warn("List: invalid filters: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	all, err := s.structureRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := make([]*domain.Structure, 0, len(all))
	for i := range all {
		if suggest.StructureMatchesFilters(&all[i], season, unit) {
			filtered = append(filtered, &all[i])
		}
	}

	s.logger.Info("List: %d of %d structures match", len(filtered), len(all))
	return models.FromDomainStructureList(filtered, s.thresholds), nil
}
