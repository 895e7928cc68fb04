package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// ─── Planes ──────────────────────────────────────────────────────────────────

func TestPlan_CreateYVisibilidad(t *testing.T) {
	uc := usecase.NewPlanUseCase(newFakePlans())
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.PlanRequest{Name: " Plan 310 ", Details: "Cobertura total"})
	require.NoError(t, err)
	assert.Equal(t, "Plan 310", p.Name)
	assert.True(t, p.Active)

	require.NoError(t, uc.Delete(ctx, p.ID))

	_, err = uc.Get(ctx, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un asesor no ve planes dados de baja")

	got, err := uc.Get(ctx, p.ID, true)
	require.NoError(t, err)
	assert.False(t, got.Active)

	visible, err := uc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := uc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlan_Validaciones(t *testing.T) {
	uc := usecase.NewPlanUseCase(newFakePlans())
	_, err := uc.Create(context.Background(), dto.PlanRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), 9, dto.PlanRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlan_UpdateReactiva(t *testing.T) {
	repo := newFakePlans(&entity.Plan{ID: 4, Name: "Plan 210", Active: false})
	uc := usecase.NewPlanUseCase(repo)
	active := true

	out, err := uc.Update(context.Background(), 4, dto.PlanRequest{GeneralConditions: "Carencias: 30 días", Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "Plan 210", out.Name)
	assert.True(t, out.Active)
	assert.Equal(t, "Carencias: 30 días", out.GeneralConditions)
}

// ─── Clientes ────────────────────────────────────────────────────────────────

func TestClient_SoloElAsesorCaptador(t *testing.T) {
	repo := &fakeClients{byID: map[int64]*entity.Client{
		1: {ID: 1, DNI: "30111222", FirstNames: "Laura", LastNames: "Díaz", AdvisorLegajo: 100, Active: true},
		2: {ID: 2, DNI: "30111333", FirstNames: "Pedro", LastNames: "Sosa", AdvisorLegajo: 200, Active: true},
	}}
	uc := usecase.NewClientUseCase(repo)
	ctx := context.Background()

	list, err := uc.ListByAdvisor(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "30111222", list[0].DNI)

	_, err = uc.Get(ctx, 100, 2)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Get(ctx, 100, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Update(ctx, 100, 1, dto.UpdateClientRequest{FirstNames: "Laura Inés", LastNames: "Díaz", City: "Rosario"})
	require.NoError(t, err)
	assert.Equal(t, "Laura Inés", out.FirstNames)
	assert.Equal(t, "30111222", out.DNI)
	assert.Equal(t, "Rosario", out.City)

	_, err = uc.Update(ctx, 100, 1, dto.UpdateClientRequest{FirstNames: "Laura", LastNames: "Díaz", Email: "mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
