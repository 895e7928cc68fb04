package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, name, COALESCE(details, ''), COALESCE(general_conditions, ''), active, created_at, updated_at`

func scanPlan(row pgx.Row) (*entity.Plan, error) {
	var p entity.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.Details, &p.GeneralConditions, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un plan y asigna su ID.
func (r *PlanRepo) Create(ctx context.Context, p *entity.Plan) error {
	query := `
		INSERT INTO plans (name, details, general_conditions, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Name, nullString(p.Details), nullString(p.GeneralConditions), p.Active, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID (activo o no).
func (r *PlanRepo) GetByID(ctx context.Context, id int64) (*entity.Plan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM plans WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// List lista planes por nombre.
func (r *PlanRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Plan, error) {
	rows, err := r.q.Query(ctx, `SELECT `+planColumns+` FROM plans WHERE active OR $1 ORDER BY name`, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un plan.
func (r *PlanRepo) Update(ctx context.Context, p *entity.Plan) error {
	query := `
		UPDATE plans SET name = $2, details = $3, general_conditions = $4, active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name, nullString(p.Details), nullString(p.GeneralConditions), p.Active, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete da de baja el plan (active = false).
func (r *PlanRepo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE plans SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
