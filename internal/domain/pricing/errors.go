package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain"
)

// ValidationError dato de entrada inválido; se informa al asesor (HTTP 400).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// DiscountCapError la suma de descuentos supera el tope permitido. No se recorta: se rechaza.
type DiscountCapError struct {
	Requested decimal.Decimal
	Cap       decimal.Decimal
}

func (e *DiscountCapError) Error() string {
	return fmt.Sprintf("la suma de descuentos (%s%%) supera el tope permitido de %s%% (exceso: %s%%)",
		e.Requested.String(), e.Cap.String(), e.Requested.Sub(e.Cap).String())
}

func (e *DiscountCapError) Unwrap() error { return domain.ErrInvalidInput }

// ConfigError la tabla de precios o de aportes está incompleta o tiene valores inválidos.
// Es un error del servidor (HTTP 500), nunca se reemplaza por cero.
type ConfigError struct {
	Lookup string // "precio", "aporte_categoria", "aporte_adherente"
	Key    string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuración de %s [%s]: %v", e.Lookup, e.Key, e.Err)
	}
	return fmt.Sprintf("configuración de %s [%s] inválida", e.Lookup, e.Key)
}

// Unwrap expone tanto domain.ErrPricingConfig como la causa original.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrPricingConfig, e.Err}
	}
	return []error{domain.ErrPricingConfig}
}
