package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями структур
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// ListByEvent получает бронирования мероприятия
// Опционально фильтрует по статусу
func (s *Service) ListByEvent(ctx context.Context, req *models.ListEventBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByEvent: fetching bookings for event=%d, status=%v", req.EventID, req.Status)

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByEvent: invalid status=%s for event=%d", *req.Status, req.EventID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, req.EventID)
	if err != nil {
		s.logger.Error("ListByEvent: repository error for event=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - repository error: %v", ErrInternal, err)
	}

	if status != nil {
		filtered := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == *status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	s.logger.Info("ListByEvent: successfully fetched %d bookings for event=%d", len(bookings), req.EventID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить можно бронирование в любом статусе, кроме rejected и cancelled.
// Отмена подтверждённого бронирования освобождает структуру
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	return s.transition(ctx, "Cancel", bookingID, domain.StatusCancelled, func(b *domain.Booking) error {
		if b.IsClosed() {
			return ErrCannotCancel
		}
		return nil
	})
}

// Reject отклоняет бронирование, которое ещё не подтверждено
func (s *Service) Reject(ctx context.Context, bookingID int64) error {
	s.logger.Info("Reject: rejecting booking id=%d", bookingID)

	return s.transition(ctx, "Reject", bookingID, domain.StatusRejected, func(b *domain.Booking) error {
		if !b.CanBeConfirmed() {
			return ErrCannotReject
		}
		return nil
	})
}

// transition меняет статус бронирования внутри транзакции,
// предварительно блокируя строку и проверяя допустимость перехода
func (s *Service) transition(
	ctx context.Context,
	op string,
	bookingID int64,
	status domain.BookingStatus,
	allowed func(*domain.Booking) error,
) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("%s: booking id=%d not found", op, bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if err := allowed(booking); err != nil {
			s.logger.Warn("%s: booking id=%d has status %s", op, bookingID, booking.Status)
			return err
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, status, s.now()); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("%s: failed to update booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrCannotCancel) ||
			errors.Is(err, ErrCannotReject) || errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %s - transaction error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: booking id=%d moved to status=%s", op, bookingID, status)
	return nil
}
