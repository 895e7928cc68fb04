package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

// PriceListRepo implementación de PriceListRepository (usable con pool o tx).
type PriceListRepo struct {
	q Querier
}

// NewPriceListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

const priceColumns = `id, list_name, income_type, band_key, plan_id, price, active, created_at, updated_at`

func scanPriceEntry(row pgx.Row) (*entity.PriceEntry, error) {
	var e entity.PriceEntry
	var incomeType, band string
	if err := row.Scan(&e.ID, &e.ListName, &incomeType, &band, &e.PlanID, &e.Price, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.IncomeType = pricing.IncomeType(incomeType)
	e.BandKey = pricing.BandKey(band)
	return &e, nil
}

// FindPrice precio activo para plan × lista × banda. Sin fila devuelve un error que envuelve domain.ErrNotFound.
func (r *PriceListRepo) FindPrice(ctx context.Context, planID int64, list pricing.IncomeType, band pricing.BandKey) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT price FROM price_list_entries
		WHERE plan_id = $1 AND income_type = $2 AND band_key = $3 AND active
		LIMIT 1`, planID, string(list), string(band)).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("sin precio para plan %d, lista %s, banda %s: %w", planID, list, band, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("find price: %w", err)
	}
	return price, nil
}

// CreateBatch inserta varias filas con un único round-trip (pgx.Batch). Asigna los IDs.
func (r *PriceListRepo) CreateBatch(ctx context.Context, entries []*entity.PriceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO price_list_entries (list_name, income_type, band_key, plan_id, price, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			e.ListName, string(e.IncomeType), string(e.BandKey), e.PlanID, e.Price, e.Active, e.CreatedAt, e.UpdatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, e := range entries {
		if err := br.QueryRow().Scan(&e.ID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("ya existe un precio activo para plan %d, lista %s, banda %s: %w", e.PlanID, e.IncomeType, e.BandKey, domain.ErrDuplicate)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("plan %d inexistente: %w", e.PlanID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert price entry: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una fila activa por ID.
func (r *PriceListRepo) GetByID(ctx context.Context, id int64) (*entity.PriceEntry, error) {
	e, err := scanPriceEntry(r.q.QueryRow(ctx, `SELECT `+priceColumns+` FROM price_list_entries WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price entry: %w", err)
	}
	return e, nil
}

// ListByPlanAndType lista las filas activas de un plan para una lista.
func (r *PriceListRepo) ListByPlanAndType(ctx context.Context, planID int64, incomeType pricing.IncomeType) ([]*entity.PriceEntry, error) {
	return r.list(ctx, `SELECT `+priceColumns+` FROM price_list_entries
		WHERE plan_id = $1 AND income_type = $2 AND active ORDER BY band_key`, planID, string(incomeType))
}

// ListByType lista las filas activas de una lista para todos los planes.
func (r *PriceListRepo) ListByType(ctx context.Context, incomeType pricing.IncomeType) ([]*entity.PriceEntry, error) {
	return r.list(ctx, `SELECT `+priceColumns+` FROM price_list_entries
		WHERE income_type = $1 AND active ORDER BY plan_id, band_key`, string(incomeType))
}

func (r *PriceListRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PriceEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceEntry
	for rows.Next() {
		e, err := scanPriceEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update modifica banda y precio de una fila activa.
func (r *PriceListRepo) Update(ctx context.Context, e *entity.PriceEntry) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE price_list_entries SET band_key = $2, price = $3, updated_at = $4
		WHERE id = $1 AND active`, e.ID, string(e.BandKey), e.Price, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update price entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete da de baja una fila.
func (r *PriceListRepo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE price_list_entries SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("delete price entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncreaseAll aplica un aumento porcentual a los precios activos y devuelve las filas afectadas.
func (r *PriceListRepo) IncreaseAll(ctx context.Context, pct decimal.Decimal, incomeType pricing.IncomeType) (int64, error) {
	factor := decimal.NewFromInt(1).Add(pct.Div(decimal.NewFromInt(100)))
	tag, err := r.q.Exec(ctx, `
		UPDATE price_list_entries SET price = ROUND(price * $1::numeric, 2), updated_at = NOW()
		WHERE active AND ($2::text = '' OR income_type = $2::text)`, factor, string(incomeType))
	if err != nil {
		return 0, fmt.Errorf("increase prices: %w", err)
	}
	return tag.RowsAffected(), nil
}
