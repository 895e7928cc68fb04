package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateInput controla la forma de la entrada antes de calcular.
// Devuelve el primer *ValidationError encontrado.
func ValidateInput(in QuotationInput, members []FamilyMember) error {
	if in.PlanID < 1 {
		return &ValidationError{Field: "plan_id", Reason: "debe ser un entero positivo"}
	}
	if !in.IncomeType.Valid() {
		return &ValidationError{Field: "tipo_ingreso", Reason: fmt.Sprintf("debe ser uno de: %s, %s, %s",
			IncomeMandatory, IncomeVoluntary, IncomeMonotributo)}
	}
	if len(members) == 0 {
		return &ValidationError{Field: "miembros", Reason: "debe haber al menos un miembro en la cotización"}
	}
	for i, m := range members {
		if !m.Role.Valid() {
			return &ValidationError{Field: fmt.Sprintf("miembros[%d].parentesco", i),
				Reason: fmt.Sprintf("parentesco inválido %q", m.Role)}
		}
		if m.Age < 0 || m.Age > MaxMemberAge {
			return &ValidationError{Field: fmt.Sprintf("miembros[%d].edad", i),
				Reason: fmt.Sprintf("la edad debe estar entre 0 y %d (recibido %d)", MaxMemberAge, m.Age)}
		}
	}

	if err := checkAllowed("descuento_comercial_pct", in.CommercialDiscountPct, CommercialDiscounts); err != nil {
		return err
	}
	if err := checkAllowed("descuento_afinidad_pct", in.AffinityDiscountPct, AffinityDiscounts); err != nil {
		return err
	}
	if err := checkAllowed("descuento_tarjeta_pct", in.CardDiscountPct, CardDiscounts); err != nil {
		return err
	}

	if in.SocialSecurityContribution.IsNegative() {
		return &ValidationError{Field: "aporte_obra_social", Reason: "no puede ser negativo"}
	}
	if in.IncomeType == IncomeMonotributo {
		if !in.MonotributoCategory.Valid() {
			return &ValidationError{Field: "monotributo_categoria", Reason: "es requerida para Monotributo y debe estar entre A y K"}
		}
		if in.MonotributoAdherents < 0 {
			return &ValidationError{Field: "monotributo_adherentes", Reason: "no puede ser negativo"}
		}
	}
	return nil
}

func checkAllowed(field string, v decimal.Decimal, allowed []decimal.Decimal) error {
	if containsDecimal(allowed, v) {
		return nil
	}
	opts := ""
	for i, a := range allowed {
		if i > 0 {
			opts += ", "
		}
		opts += a.String()
	}
	return &ValidationError{Field: field, Reason: fmt.Sprintf("debe ser uno de: %s", opts)}
}
