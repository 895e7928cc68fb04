package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// PriceListRepository define el puerto de persistencia de la lista de precios.
// También cumple pricing.PriceLookup para el motor de cálculo.
type PriceListRepository interface {
	pricing.PriceLookup

	CreateBatch(ctx context.Context, entries []*entity.PriceEntry) error
	GetByID(ctx context.Context, id int64) (*entity.PriceEntry, error)
	ListByPlanAndType(ctx context.Context, planID int64, incomeType pricing.IncomeType) ([]*entity.PriceEntry, error)
	ListByType(ctx context.Context, incomeType pricing.IncomeType) ([]*entity.PriceEntry, error)
	Update(ctx context.Context, e *entity.PriceEntry) error
	SoftDelete(ctx context.Context, id int64) error
	// IncreaseAll multiplica los precios activos por (1 + pct/100). incomeType vacío = todas las listas.
	IncreaseAll(ctx context.Context, pct decimal.Decimal, incomeType pricing.IncomeType) (int64, error)
}
