package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/occupancy"
	bookingRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StructureBooking/pkg/txmanager"
)

// UseCase use case для подтверждения бронирования структуры
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения бронирования
// Проверка занятости и смена статуса выполняются в одной сериализуемой транзакции,
// поэтому из двух конкурирующих подтверждений на пересекающиеся даты зафиксируется только одно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			if errors.Is(err, txmanager.ErrSerialization) {
				return err
			}
			uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем статус
		if booking.IsConfirmed() {
			uc.logger.Warn("ConfirmBooking: booking id=%d already confirmed", booking.ID)
			return ErrAlreadyConfirmed
		}
		if !booking.CanBeConfirmed() {
			uc.logger.Warn("ConfirmBooking: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrCannotConfirm
		}

		// 2.3. Получаем подтверждённые бронирования структуры на эти даты (FOR UPDATE)
		confirmed, err := uc.bookingRepo.ListConfirmedOverlapping(txCtx, booking.StructureID, booking.Range())
		if err != nil {
			if errors.Is(err, txmanager.ErrSerialization) {
				return err
			}
			uc.logger.Error("ConfirmBooking: failed to list confirmed bookings: %v", err)
			return fmt.Errorf("%w: failed to list confirmed bookings: %v", ErrInternal, err)
		}

		// 2.4. Проверяем пересечения, не считая бронирований своего мероприятия
		conflicts := occupancy.Conflicts(confirmed, booking.StructureID, booking.Range(), &booking.EventID)
		if len(conflicts) > 0 {
			uc.logger.Warn("ConfirmBooking: structure=%d occupied by booking id=%d (event=%d)",
				booking.StructureID, conflicts[0].ID, conflicts[0].EventID)
			return &ConflictError{BookingID: conflicts[0].ID, EventID: conflicts[0].EventID}
		}

		// 2.5. Подтверждаем
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed, now); err != nil {
			if errors.Is(err, bookingRepo.ErrOverlappingConfirmed) {
				uc.logger.Warn("ConfirmBooking: database rejected overlapping confirmation for booking id=%d", booking.ID)
				return ErrStructureOccupied
			}
			if errors.Is(err, txmanager.ErrSerialization) {
				return err
			}
			uc.logger.Error("ConfirmBooking: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		booking.ConfirmedAt = &now
		result = booking
		return nil
	})

	if err != nil {
		// 3. Конкурирующее подтверждение зафиксировалось раньше: БД откатила нашу транзакцию
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ConfirmBooking: booking id=%d lost to a concurrent confirmation: %v", req.BookingID, err)
			uc.metrics.IncOccupancyConflict()
			return nil, fmt.Errorf("%w: %v", ErrStructureOccupied, err)
		}
		if errors.Is(err, ErrStructureOccupied) {
			uc.metrics.IncOccupancyConflict()
			return nil, err
		}
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("ConfirmBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed for structure=%d", result.ID, result.StructureID)

	return &Response{
		ID:          result.ID,
		EventID:     result.EventID,
		StructureID: result.StructureID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Status:      string(result.Status),
		Notes:       result.Notes,
		ConfirmedAt: now,
	}, nil
}

// isKnown возвращает true для ошибок, которые уже классифицированы use case
func isKnown(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrAlreadyConfirmed) ||
		errors.Is(err, ErrCannotConfirm) ||
		errors.Is(err, ErrInternal)
}
