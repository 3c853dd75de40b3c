package structure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
	"github.com/m04kA/SMC-StructureBooking/pkg/psqlbuilder"
)

var structureColumns = []string{
	"id",
	"name",
	"type",
	"latitude",
	"longitude",
	"indoor_beds",
	"tent_pitches",
}

// Repository репозиторий для чтения структур
// Структуры возвращаются полностью: с вариантами стоимости и сезонной доступностью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория структур
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает структуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Structure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(structureColumns...).
		From("structures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	structure, err := scanStructure(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStructureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan structure: %v", ErrScanRow, err)
	}

	structures := []domain.Structure{*structure}
	if err := r.attachDetails(ctx, structures); err != nil {
		return nil, err
	}

	return &structures[0], nil
}

// List получает все структуры, упорядоченные по имени
func (r *Repository) List(ctx context.Context) ([]domain.Structure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(structureColumns...).
		From("structures").
		OrderBy("name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	structures := make([]domain.Structure, 0)
	for rows.Next() {
		structure, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		structures = append(structures, *structure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if err := r.attachDetails(ctx, structures); err != nil {
		return nil, err
	}

	return structures, nil
}

// attachDetails загружает варианты стоимости и доступность одним запросом на таблицу
func (r *Repository) attachDetails(ctx context.Context, structures []domain.Structure) error {
	if len(structures) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(structures))
	index := make(map[int64]int, len(structures))
	for i, s := range structures {
		ids = append(ids, s.ID)
		index[s.ID] = i
	}

	options, err := r.getCostOptions(ctx, ids)
	if err != nil {
		return err
	}
	availabilities, err := r.getAvailabilities(ctx, ids)
	if err != nil {
		return err
	}

	for i := range structures {
		structures[i].CostOptions = make([]domain.CostOption, 0)
		structures[i].Availabilities = make([]domain.SeasonAvailability, 0)
	}
	for _, o := range options {
		i := index[o.structureID]
		structures[i].CostOptions = append(structures[i].CostOptions, o.option)
	}
	for _, a := range availabilities {
		i := index[a.structureID]
		structures[i].Availabilities = append(structures[i].Availabilities, a.availability)
	}

	return nil
}

type costOptionRow struct {
	structureID int64
	option      domain.CostOption
}

// getCostOptions получает варианты стоимости в порядке их создания
func (r *Repository) getCostOptions(ctx context.Context, structureIDs []int64) ([]costOptionRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"structure_id",
		"model",
		"amount",
		"currency",
		"deposit",
		"city_tax_per_night",
		"utilities_flat",
		"age_rules",
	).
		From("structure_cost_options").
		Where(squirrel.Eq{"structure_id": structureIDs}).
		OrderBy("structure_id ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getCostOptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getCostOptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]costOptionRow, 0)
	for rows.Next() {
		var (
			row                         costOptionRow
			deposit, cityTax, utilities decimal.NullDecimal
			ageRules                    []byte
		)

		if err := rows.Scan(
			&row.option.ID,
			&row.structureID,
			&row.option.Model,
			&row.option.Amount,
			&row.option.Currency,
			&deposit,
			&cityTax,
			&utilities,
			&ageRules,
		); err != nil {
			return nil, fmt.Errorf("%w: getCostOptions - scan row: %v", ErrScanRow, err)
		}

		row.option.Deposit = nullDecimalPtr(deposit)
		row.option.CityTaxPerNight = nullDecimalPtr(cityTax)
		row.option.UtilitiesFlat = nullDecimalPtr(utilities)

		row.option.AgeRules, err = decodeAgeRules(ageRules)
		if err != nil {
			return nil, err
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getCostOptions - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type availabilityRow struct {
	structureID  int64
	availability domain.SeasonAvailability
}

// getAvailabilities получает сезонную доступность структур
func (r *Repository) getAvailabilities(ctx context.Context, structureIDs []int64) ([]availabilityRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"structure_id",
		"season",
		"units",
		"min_capacity",
		"max_capacity",
	).
		From("structure_season_availabilities").
		Where(squirrel.Eq{"structure_id": structureIDs}).
		OrderBy("structure_id ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getAvailabilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getAvailabilities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]availabilityRow, 0)
	for rows.Next() {
		var (
			row            availabilityRow
			units          []string
			minCap, maxCap sql.NullInt64
		)

		if err := rows.Scan(
			&row.availability.ID,
			&row.structureID,
			&row.availability.Season,
			pq.Array(&units),
			&minCap,
			&maxCap,
		); err != nil {
			return nil, fmt.Errorf("%w: getAvailabilities - scan row: %v", ErrScanRow, err)
		}

		row.availability.Units = toUnits(units)
		row.availability.MinCapacity = nullIntPtr(minCap)
		row.availability.MaxCapacity = nullIntPtr(maxCap)

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getAvailabilities - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStructure(row rowScanner) (*domain.Structure, error) {
	var (
		structure               domain.Structure
		latitude, longitude     sql.NullFloat64
		indoorBeds, tentPitches sql.NullInt64
	)

	if err := row.Scan(
		&structure.ID,
		&structure.Name,
		&structure.Type,
		&latitude,
		&longitude,
		&indoorBeds,
		&tentPitches,
	); err != nil {
		return nil, err
	}

	if latitude.Valid && longitude.Valid {
		point := geo.Pt(latitude.Float64, longitude.Float64)
		structure.Coordinates = &point
	}
	structure.IndoorBeds = nullIntPtr(indoorBeds)
	structure.TentPitches = nullIntPtr(tentPitches)

	return &structure, nil
}

func decodeAgeRules(raw []byte) (*domain.AgeRules, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rules domain.AgeRules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeAgeRules, err)
	}
	return &rules, nil
}

func toUnits(values []string) []domain.Unit {
	units := make([]domain.Unit, 0, len(values))
	for _, v := range values {
		units = append(units, domain.Unit(v))
	}
	return units
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
