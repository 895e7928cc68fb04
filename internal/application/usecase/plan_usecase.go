package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

// PlanUseCase CRUD de planes con baja lógica.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Create da de alta un plan activo.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.PlanRequest) (*dto.PlanResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Plan{
		Name:              name,
		Details:           in.Details,
		GeneralConditions: in.GeneralConditions,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// List planes visibles: todos para administradores, solo activos para el resto.
func (uc *PlanUseCase) List(ctx context.Context, includeInactive bool) ([]dto.PlanResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// Get obtiene un plan. Sin includeInactive un plan dado de baja se informa como inexistente.
func (uc *PlanUseCase) Get(ctx context.Context, id int64, includeInactive bool) (*dto.PlanResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || (!p.Active && !includeInactive) {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(p), nil
}

// Update modifica nombre, textos y opcionalmente el estado.
func (uc *PlanUseCase) Update(ctx context.Context, id int64, in dto.PlanRequest) (*dto.PlanResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	p.Details = in.Details
	p.GeneralConditions = in.GeneralConditions
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// Delete baja lógica.
func (uc *PlanUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.SoftDelete(ctx, id)
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:                p.ID,
		Name:              p.Name,
		Details:           p.Details,
		GeneralConditions: p.GeneralConditions,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
