// Package pricing es el motor de cálculo de cotizaciones: traduce cada miembro
// del grupo familiar a una banda etaria, obtiene su precio, aplica los
// descuentos apilados con tope y el ajuste propio del tipo de ingreso
// (aportes de obra social, monotributo o IVA).
//
// El motor no guarda estado ni escribe en almacenamiento; solo consulta los
// puertos PriceLookup y ContributionLookup.
package pricing

import "github.com/shopspring/decimal"

// Role parentesco del miembro dentro del grupo familiar.
type Role string

// Parentescos válidos (valores persistidos y recibidos por la API).
const (
	RoleHolder Role = "Titular"
	RoleSpouse Role = "Conyuge"
	RoleChild  Role = "Hijo"
)

// Valid informa si el parentesco es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleHolder, RoleSpouse, RoleChild:
		return true
	}
	return false
}

// IncomeType tipo de ingreso del titular; define la lista de precios y el ajuste final.
type IncomeType string

const (
	IncomeMandatory   IncomeType = "Obligatorio"
	IncomeVoluntary   IncomeType = "Voluntario"
	IncomeMonotributo IncomeType = "Monotributo"
)

// Valid informa si el tipo de ingreso es uno de los conocidos.
func (t IncomeType) Valid() bool {
	switch t {
	case IncomeMandatory, IncomeVoluntary, IncomeMonotributo:
		return true
	}
	return false
}

// PriceListFor devuelve la lista de precios que corresponde a un tipo de ingreso.
// Monotributo cotiza con la lista de Obligatorio.
func PriceListFor(t IncomeType) IncomeType {
	if t == IncomeMonotributo {
		return IncomeMandatory
	}
	return t
}

// MonotributoCategory categoría del monotributista (A..K).
type MonotributoCategory string

// MonotributoCategories categorías admitidas, en orden.
var MonotributoCategories = []MonotributoCategory{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}

// Valid informa si la categoría está entre A y K.
func (c MonotributoCategory) Valid() bool {
	for _, v := range MonotributoCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Porcentajes de descuento admitidos.
var (
	CommercialDiscounts = []decimal.Decimal{decimal.Zero, decimal.NewFromInt(20), decimal.NewFromInt(30), decimal.NewFromInt(45)}
	AffinityDiscounts   = []decimal.Decimal{decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(20)}
	CardDiscounts       = []decimal.Decimal{decimal.Zero, decimal.NewFromInt(5)}
)

// Límites de edad.
const (
	YoungHolderMaxAge = 25 // inclusive: el titular debe tener menos de 26
	MaxMemberAge      = 100
)

// Constantes del negocio.
var (
	YoungDiscountPct    = decimal.NewFromInt(30)
	DiscountCap         = decimal.NewFromInt(50)
	DiscountCapWithCard = decimal.NewFromInt(55)

	SocialSecurityRate = decimal.RequireFromString("0.03")  // aporte a obra social sobre el sueldo bruto
	ContributionRate   = decimal.RequireFromString("0.09")  // aporte estimado que se descuenta del plan
	SalaryCap          = decimal.NewFromInt(3500000)        // tope de sueldo bruto para el aporte
	VATRate            = decimal.RequireFromString("0.105") // IVA voluntario
)

// FamilyMember miembro del grupo familiar. UnitPrice lo completa el motor.
type FamilyMember struct {
	Role      Role            `json:"parentesco"`
	Age       int             `json:"edad"`
	UnitPrice decimal.Decimal `json:"valor_individual"`
}

// QuotationInput datos que carga el asesor para cotizar.
type QuotationInput struct {
	PlanID                     int64               `json:"plan_id"`
	IncomeType                 IncomeType          `json:"tipo_ingreso"`
	IsMarried                  bool                `json:"es_casado"`
	SocialSecurityContribution decimal.Decimal     `json:"aporte_obra_social"`
	CommercialDiscountPct      decimal.Decimal     `json:"descuento_comercial_pct"`
	AffinityDiscountPct        decimal.Decimal     `json:"descuento_afinidad_pct"`
	CardDiscountPct            decimal.Decimal     `json:"descuento_tarjeta_pct"`
	MonotributoCategory        MonotributoCategory `json:"monotributo_categoria,omitempty"`
	MonotributoAdherents       int                 `json:"monotributo_adherentes"`
}

// QuotationResult resultado del cálculo. Todos los montos van redondeados a 2 decimales.
type QuotationResult struct {
	BasePrice decimal.Decimal `json:"valor_base_plan"`

	CommercialDiscountPct    decimal.Decimal `json:"descuento_comercial_pct"`
	CommercialDiscountAmount decimal.Decimal `json:"valor_descuento_comercial"`
	AffinityDiscountPct      decimal.Decimal `json:"descuento_afinidad_pct"`
	AffinityDiscountAmount   decimal.Decimal `json:"valor_descuento_afinidad"`
	YoungDiscountPct         decimal.Decimal `json:"descuento_joven_pct"`
	YoungDiscountAmount      decimal.Decimal `json:"valor_descuento_joven"`
	CardDiscountPct          decimal.Decimal `json:"descuento_tarjeta_pct"`
	CardDiscountAmount       decimal.Decimal `json:"valor_descuento_tarjeta"`

	Subtotal decimal.Decimal `json:"subtotal"`

	GrossSalaryEstimate     decimal.Decimal `json:"sueldo_bruto"`
	EstimatedContribution   decimal.Decimal `json:"valor_aportes_estimados"`
	MonotributoContribution decimal.Decimal `json:"valor_aporte_monotributo"`
	VATAmount               decimal.Decimal `json:"valor_iva"`

	Total decimal.Decimal `json:"valor_total"`
}

// TotalDiscountPct suma de los porcentajes efectivamente aplicados.
func (r QuotationResult) TotalDiscountPct() decimal.Decimal {
	return r.CommercialDiscountPct.Add(r.AffinityDiscountPct).Add(r.YoungDiscountPct).Add(r.CardDiscountPct)
}

// Calculation salida completa del motor: entrada, resultado y miembros con precio.
type Calculation struct {
	Input   QuotationInput  `json:"cotizacion"`
	Result  QuotationResult `json:"resultado"`
	Members []FamilyMember  `json:"miembros"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func containsDecimal(set []decimal.Decimal, v decimal.Decimal) bool {
	for _, s := range set {
		if s.Equal(v) {
			return true
		}
	}
	return false
}
