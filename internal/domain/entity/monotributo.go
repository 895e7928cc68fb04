package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdherentCategory fila especial de la tabla con el aporte por adherente.
const AdherentCategory = "Adherente"

// MonotributoContribution aporte mensual de una categoría de monotributo (A..K o Adherente).
type MonotributoContribution struct {
	Category  string
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
