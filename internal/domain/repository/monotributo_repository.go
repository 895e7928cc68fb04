package repository

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// MonotributoRepository tabla de aportes de monotributo. Cumple pricing.ContributionLookup.
type MonotributoRepository interface {
	pricing.ContributionLookup

	Upsert(ctx context.Context, c *entity.MonotributoContribution) error
	List(ctx context.Context) ([]*entity.MonotributoContribution, error)
}
