package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StructureBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StructureBooking/pkg/txmanager"
)

// pgExclusionViolation код ошибки PostgreSQL для нарушения EXCLUDE constraint
const pgExclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"event_id",
	"structure_id",
	"start_date",
	"end_date",
	"status",
	"notes",
	"confirmed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями структур
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"event_id",
			"structure_id",
			"start_date",
			"end_date",
			"status",
			"notes",
		).
		Values(
			booking.EventID,
			booking.StructureID,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetByID - scan booking", err)
	}

	return booking, nil
}

// ListConfirmedOverlapping получает подтверждённые бронирования структуры,
// пересекающиеся с диапазоном (границы включительно)
// Если используется транзакция, добавляет FOR UPDATE для блокировки найденных строк
func (r *Repository) ListConfirmedOverlapping(ctx context.Context, structureID int64, rng domain.DateRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"structure_id": structureID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.LtOrEq{"start_date": domain.DateOnly(rng.End)}).
		Where(squirrel.GtOrEq{"end_date": domain.DateOnly(rng.Start)}).
		OrderBy("start_date ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "ListConfirmedOverlapping - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListConfirmedInRange получает подтверждённые бронирования всех структур,
// пересекающиеся с диапазоном
func (r *Repository) ListConfirmedInRange(ctx context.Context, rng domain.DateRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.LtOrEq{"start_date": domain.DateOnly(rng.End)}).
		Where(squirrel.GtOrEq{"end_date": domain.DateOnly(rng.Start)}).
		OrderBy("structure_id ASC", "start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByEvent получает бронирования мероприятия
func (r *Repository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
// При переводе в confirmed проставляет confirmed_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusConfirmed {
		updateBuilder = updateBuilder.Set("confirmed_at", at)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return fmt.Errorf("%w: UpdateStatus: %v", ErrOverlappingConfirmed, err)
		}
		return wrapErr(ErrExecQuery, "UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, wrapErr(ErrScanRow, "scanBookings - scan row", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrScanRow, "scanBookings - rows error", err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.StructureID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.Notes,
		&booking.ConfirmedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// wrapErr оборачивает ошибку драйвера в sentinel репозитория
// Конфликт сериализации отдается как txmanager.ErrSerialization, чтобы вызывающая сторона могла его отличить
func wrapErr(sentinel error, op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerialization, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgExclusionViolation
}
