package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// PriceEntry fila de la lista de precios: plan × lista × banda etaria → precio unitario.
type PriceEntry struct {
	ID         int64
	ListName   string
	IncomeType pricing.IncomeType // Obligatorio o Voluntario
	BandKey    pricing.BandKey
	PlanID     int64
	Price      decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
