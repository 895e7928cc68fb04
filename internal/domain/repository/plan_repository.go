package repository

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// PlanRepository define el puerto de persistencia para Plan.
type PlanRepository interface {
	Create(ctx context.Context, p *entity.Plan) error
	GetByID(ctx context.Context, id int64) (*entity.Plan, error)
	// List devuelve los planes activos; con includeInactive también los dados de baja.
	List(ctx context.Context, includeInactive bool) ([]*entity.Plan, error)
	Update(ctx context.Context, p *entity.Plan) error
	SoftDelete(ctx context.Context, id int64) error
}
