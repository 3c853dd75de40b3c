package quote

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

var quoteColumns = []string{
	"id",
	"reference",
	"event_id",
	"structure_id",
	"currency",
	"subtotal",
	"utilities",
	"city_tax",
	"deposit",
	"total",
	"breakdown",
	"inputs",
	"scenarios",
	"created_at",
}

// Repository репозиторий для работы со сметами
// Разбивка, снимок входных данных и сценарии хранятся в JSONB
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смет
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет смету
func (r *Repository) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	breakdown, inputs, scenarios, err := encodeSnapshot(q)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("quotes").
		Columns(
			"reference",
			"event_id",
			"structure_id",
			"currency",
			"subtotal",
			"utilities",
			"city_tax",
			"deposit",
			"total",
			"breakdown",
			"inputs",
			"scenarios",
		).
		Values(
			q.Reference,
			q.EventID,
			q.StructureID,
			q.Currency,
			q.Totals.Subtotal,
			q.Totals.Utilities,
			q.Totals.CityTax,
			q.Totals.Deposit,
			q.Totals.Total,
			breakdown,
			inputs,
			scenarios,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&q.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	q.CreatedAt = createdAt.Time

	return q, nil
}

// GetByID получает смету по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(quoteColumns...).
		From("quotes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	q, err := scanQuote(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}

	return q, nil
}

// ListByEvent получает сметы мероприятия, новые первыми
func (r *Repository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(quoteColumns...).
		From("quotes").
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

	quotes := make([]*domain.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - rows error: %v", ErrScanRow, err)
	}

	return quotes, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var (
		q                            domain.Quote
		breakdown, inputs, scenarios []byte
		createdAt                    sql.NullTime
	)

	err := row.Scan(
		&q.ID,
		&q.Reference,
		&q.EventID,
		&q.StructureID,
		&q.Currency,
		&q.Totals.Subtotal,
		&q.Totals.Utilities,
		&q.Totals.CityTax,
		&q.Totals.Deposit,
		&q.Totals.Total,
		&breakdown,
		&inputs,
		&scenarios,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanQuote: %v", ErrScanRow, err)
	}

	if err := decodeSnapshot(&q, breakdown, inputs, scenarios); err != nil {
		return nil, err
	}
	q.CreatedAt = createdAt.Time

	return &q, nil
}

// encodeSnapshot сериализует JSONB поля сметы
func encodeSnapshot(q *domain.Quote) (breakdown, inputs, scenarios []byte, err error) {
	lines := q.Breakdown
	if lines == nil {
		lines = []domain.BreakdownLine{}
	}
	if breakdown, err = json.Marshal(lines); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: breakdown: %v", ErrEncode, err)
	}
	if inputs, err = json.Marshal(q.Inputs); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: inputs: %v", ErrEncode, err)
	}
	if scenarios, err = json.Marshal(q.Scenarios); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: scenarios: %v", ErrEncode, err)
	}
	return breakdown, inputs, scenarios, nil
}

// decodeSnapshot восстанавливает JSONB поля сметы
func decodeSnapshot(q *domain.Quote, breakdown, inputs, scenarios []byte) error {
	if err := json.Unmarshal(breakdown, &q.Breakdown); err != nil {
		return fmt.Errorf("%w: breakdown: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(inputs, &q.Inputs); err != nil {
		return fmt.Errorf("%w: inputs: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(scenarios, &q.Scenarios); err != nil {
		return fmt.Errorf("%w: scenarios: %v", ErrDecode, err)
	}
	return nil
}
