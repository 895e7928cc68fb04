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

var _ repository.MonotributoRepository = (*MonotributoRepo)(nil)

// MonotributoRepo tabla monotributo_contributions.
type MonotributoRepo struct {
	q Querier
}

// NewMonotributoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMonotributoRepository(q Querier) *MonotributoRepo {
	return &MonotributoRepo{q: q}
}

// FindContributionByCategory aporte de una categoría A..K.
func (r *MonotributoRepo) FindContributionByCategory(ctx context.Context, category pricing.MonotributoCategory) (decimal.Decimal, error) {
	return r.find(ctx, string(category))
}

// FindAdherentContribution aporte por adherente.
func (r *MonotributoRepo) FindAdherentContribution(ctx context.Context) (decimal.Decimal, error) {
	return r.find(ctx, entity.AdherentCategory)
}

func (r *MonotributoRepo) find(ctx context.Context, category string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT amount FROM monotributo_contributions WHERE category = $1`, category).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("sin aporte para la categoría %s: %w", category, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("find monotributo contribution: %w", err)
	}
	return amount, nil
}

// Upsert crea o reemplaza el aporte de una categoría.
func (r *MonotributoRepo) Upsert(ctx context.Context, c *entity.MonotributoContribution) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO monotributo_contributions (category, amount, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (category) DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
		c.Category, c.Amount, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert monotributo contribution: %w", err)
	}
	return nil
}

// List devuelve la tabla completa ordenada por categoría (Adherente al final).
func (r *MonotributoRepo) List(ctx context.Context) ([]*entity.MonotributoContribution, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, amount, updated_at FROM monotributo_contributions
		ORDER BY category = 'Adherente', category`)
	if err != nil {
		return nil, fmt.Errorf("list monotributo contributions: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonotributoContribution
	for rows.Next() {
		var c entity.MonotributoContribution
		if err := rows.Scan(&c.Category, &c.Amount, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan monotributo contribution: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
