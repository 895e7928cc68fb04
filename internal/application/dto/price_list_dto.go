package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntryRequest fila de una carga de lista de precios.
type PriceEntryRequest struct {
	ListName   string          `json:"nombre_lista"`
	IncomeType string          `json:"tipo_ingreso"`
	BandKey    string          `json:"rango_etario"`
	PlanID     int64           `json:"plan_id"`
	Price      decimal.Decimal `json:"precio"`
}

// BulkPriceListRequest carga masiva de filas.
type BulkPriceListRequest struct {
	Entries []PriceEntryRequest `json:"precios"`
}

// UpdatePriceEntryRequest modificación de banda y precio.
type UpdatePriceEntryRequest struct {
	BandKey string          `json:"rango_etario"`
	Price   decimal.Decimal `json:"precio"`
}

// PriceEntryResponse salida de una fila de la lista.
type PriceEntryResponse struct {
	ID         int64           `json:"id"`
	ListName   string          `json:"nombre_lista"`
	IncomeType string          `json:"tipo_ingreso"`
	BandKey    string          `json:"rango_etario"`
	PlanID     int64           `json:"plan_id"`
	Price      decimal.Decimal `json:"precio"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PriceIncreaseRequest aumento masivo. IncomeType vacío = todas las listas.
type PriceIncreaseRequest struct {
	Percentage decimal.Decimal `json:"porcentaje"`
	IncomeType string          `json:"tipo_ingreso"`
}

// PriceIncreaseResponse cantidad de filas actualizadas.
type PriceIncreaseResponse struct {
	Updated int64 `json:"actualizados"`
}

// MonotributoContributionRequest alta o modificación del aporte de una categoría.
type MonotributoContributionRequest struct {
	Category string          `json:"categoria"`
	Amount   decimal.Decimal `json:"aporte"`
}

// MonotributoContributionResponse fila de la tabla de aportes.
type MonotributoContributionResponse struct {
	Category  string          `json:"categoria"`
	Amount    decimal.Decimal `json:"aporte"`
	UpdatedAt time.Time       `json:"updated_at"`
}
