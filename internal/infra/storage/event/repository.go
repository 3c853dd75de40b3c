package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StructureBooking/pkg/psqlbuilder"
)

// Repository репозиторий для чтения мероприятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мероприятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мероприятие вместе с сегментами веток
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"branch",
		"start_date",
		"end_date",
		"participants",
		"created_at",
		"updated_at",
	).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		event        domain.Event
		participants []byte
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.Title,
		&event.Branch,
		&event.StartDate,
		&event.EndDate,
		&participants,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	event.Participants, err = decodeParticipants(participants)
	if err != nil {
		return nil, err
	}

	event.BranchSegments, err = r.getSegments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// getSegments получает сегменты веток мероприятия в порядке начала
func (r *Repository) getSegments(ctx context.Context, eventID int64) ([]domain.BranchSegment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"branch",
		"start_date",
		"end_date",
		"youth_count",
		"leaders_count",
		"kitchen_count",
		"accommodation",
	).
		From("event_branch_segments").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("start_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSegments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSegments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	segments := make([]domain.BranchSegment, 0)
	for rows.Next() {
		var seg domain.BranchSegment
		if err := rows.Scan(
			&seg.ID,
			&seg.Branch,
			&seg.StartDate,
			&seg.EndDate,
			&seg.YouthCount,
			&seg.LeadersCount,
			&seg.KitchenCount,
			&seg.Accommodation,
		); err != nil {
			return nil, fmt.Errorf("%w: getSegments - scan row: %v", ErrScanRow, err)
		}
		segments = append(segments, seg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSegments - rows error: %v", ErrScanRow, err)
	}

	return segments, nil
}

// decodeParticipants разбирает JSONB с численностью участников
func decodeParticipants(raw []byte) (map[string]int, error) {
	participants := make(map[string]int)
	if len(raw) == 0 {
		return participants, nil
	}
	if err := json.Unmarshal(raw, &participants); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeParticipants, err)
	}
	return participants, nil
}
