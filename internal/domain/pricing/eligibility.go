package pricing

import "github.com/shopspring/decimal"

// IsYoungDiscountEligible informa si el grupo califica para el descuento joven automático:
// hay titular, el titular tiene menos de 26 años, no es casado y ningún miembro es cónyuge.
// No depende de ningún dato que cargue el asesor.
func IsYoungDiscountEligible(members []FamilyMember, in QuotationInput) bool {
	if in.IsMarried {
		return false
	}
	holderFound := false
	for _, m := range members {
		switch m.Role {
		case RoleHolder:
			if m.Age > YoungHolderMaxAge {
				return false
			}
			holderFound = true
		case RoleChild:
		default:
			return false
		}
	}
	return holderFound
}

// YoungDiscountFor devuelve el porcentaje de descuento joven que corresponde (30 o 0).
func YoungDiscountFor(members []FamilyMember, in QuotationInput) decimal.Decimal {
	if IsYoungDiscountEligible(members, in) {
		return YoungDiscountPct
	}
	return decimal.Zero
}

// DiscountCapFor tope de descuentos: 55 si se usa descuento por tarjeta, 50 en otro caso.
func DiscountCapFor(cardDiscountPct decimal.Decimal) decimal.Decimal {
	if cardDiscountPct.GreaterThan(decimal.Zero) {
		return DiscountCapWithCard
	}
	return DiscountCap
}

// CheckDiscountCap valida que la suma de descuentos (incluido el joven ya derivado) no supere el tope.
func CheckDiscountCap(commercial, affinity, young, card decimal.Decimal) error {
	sum := commercial.Add(affinity).Add(young).Add(card)
	limit := DiscountCapFor(card)
	if sum.GreaterThan(limit) {
		return &DiscountCapError{Requested: sum, Cap: limit}
	}
	return nil
}
