package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// MemberAge edad tal como llega en el cuerpo. Acepta cualquier valor JSON para que la
// validación informe qué miembro trae una edad que no es un entero.
type MemberAge struct {
	value   int
	present bool
	isInt   bool
}

// Age edad entera.
func Age(n int) MemberAge { return MemberAge{value: n, present: true, isInt: true} }

// UnmarshalJSON nunca falla: null deja la edad ausente, un entero (también entre comillas)
// es válido y cualquier otro valor queda presente pero inválido.
func (a *MemberAge) UnmarshalJSON(b []byte) error {
	*a = MemberAge{}
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	a.present = true
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if n, err := strconv.Atoi(s); err == nil {
		a.value, a.isInt = n, true
	}
	return nil
}

func (a MemberAge) MarshalJSON() ([]byte, error) {
	if !a.present || !a.isInt {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(a.value)), nil
}

// Present indica si el campo vino en el cuerpo.
func (a MemberAge) Present() bool { return a.present }

// Int devuelve la edad y si es un entero válido.
func (a MemberAge) Int() (int, bool) { return a.value, a.present && a.isInt }

// MemberRequest miembro del grupo familiar.
type MemberRequest struct {
	Role string    `json:"parentesco"`
	Age  MemberAge `json:"edad" swaggertype:"integer"`
}

// QuotationData datos de la cotización que carga el asesor.
type QuotationData struct {
	PlanID                     int64           `json:"plan_id"`
	IncomeType                 string          `json:"tipo_ingreso"`
	IsMarried                  *bool           `json:"es_casado"`
	SocialSecurityContribution decimal.Decimal `json:"aporte_obra_social"`
	CommercialDiscountPct      decimal.Decimal `json:"descuento_comercial_pct"`
	AffinityDiscountPct        decimal.Decimal `json:"descuento_afinidad_pct"`
	CardDiscountPct            decimal.Decimal `json:"descuento_tarjeta_pct"`
	MonotributoCategory        string          `json:"monotributo_categoria"`
	MonotributoAdherents       int             `json:"monotributo_adherentes"`
}

// QuotationRequest alta, modificación o vista previa de una cotización.
// Client es obligatorio solo al crear.
type QuotationRequest struct {
	Client    *ClientData     `json:"clienteData,omitempty"`
	Quotation QuotationData   `json:"cotizacionData"`
	Members   []MemberRequest `json:"miembrosData"`
}

// MemberResponse miembro cotizado.
type MemberResponse struct {
	Role      string          `json:"parentesco"`
	Age       int             `json:"edad"`
	UnitPrice decimal.Decimal `json:"valor_individual"`
}

// CalculatedQuotation datos cargados y resultado del motor en un solo objeto.
type CalculatedQuotation struct {
	PlanID                     int64           `json:"plan_id"`
	IncomeType                 string          `json:"tipo_ingreso"`
	IsMarried                  bool            `json:"es_casado"`
	SocialSecurityContribution decimal.Decimal `json:"aporte_obra_social"`
	MonotributoCategory        string          `json:"monotributo_categoria,omitempty"`
	MonotributoAdherents       int             `json:"monotributo_adherentes"`

	BasePrice                decimal.Decimal `json:"valor_base_plan"`
	CommercialDiscountPct    decimal.Decimal `json:"descuento_comercial_pct"`
	CommercialDiscountAmount decimal.Decimal `json:"valor_descuento_comercial"`
	AffinityDiscountPct      decimal.Decimal `json:"descuento_afinidad_pct"`
	AffinityDiscountAmount   decimal.Decimal `json:"valor_descuento_afinidad"`
	YoungDiscountPct         decimal.Decimal `json:"descuento_joven_pct"`
	YoungDiscountAmount      decimal.Decimal `json:"valor_descuento_joven"`
	CardDiscountPct          decimal.Decimal `json:"descuento_tarjeta_pct"`
	CardDiscountAmount       decimal.Decimal `json:"valor_descuento_tarjeta"`
	TotalDiscountPct         decimal.Decimal `json:"descuento_total_pct"`

	Subtotal                decimal.Decimal `json:"subtotal"`
	GrossSalaryEstimate     decimal.Decimal `json:"sueldo_bruto"`
	EstimatedContribution   decimal.Decimal `json:"valor_aportes_estimados"`
	MonotributoContribution decimal.Decimal `json:"valor_aporte_monotributo"`
	VATAmount               decimal.Decimal `json:"valor_iva"`
	Total                   decimal.Decimal `json:"valor_total"`
}

// PreviewResponse resultado del cálculo sin persistir.
type PreviewResponse struct {
	Quotation CalculatedQuotation `json:"cotizacionCalculada"`
	Members   []MemberResponse    `json:"miembrosConPrecios"`
}

// QuotationResponse cotización completa.
type QuotationResponse struct {
	ID            int64                   `json:"id"`
	Number        string                  `json:"numero"`
	Status        string                  `json:"estado"`
	CreatedAt     time.Time               `json:"fecha_creacion"`
	ExpiresAt     time.Time               `json:"fecha_vencimiento"`
	CoverageStart time.Time               `json:"inicio_cobertura"`
	ClientID      int64                   `json:"cliente_id"`
	ClientDNI     string                  `json:"cliente_dni,omitempty"`
	ClientName    string                  `json:"cliente_nombre,omitempty"`
	PlanID        int64                   `json:"plan_id"`
	PlanName      string                  `json:"plan_nombre,omitempty"`
	AdvisorLegajo int64                   `json:"asesor_id"`
	AdvisorName   string                  `json:"asesor_nombre,omitempty"`
	Input         pricing.QuotationInput  `json:"cotizacion"`
	Result        pricing.QuotationResult `json:"resultado"`
	Members       []MemberResponse        `json:"miembros"`
}

// QuotationSummaryResponse fila del listado de cotizaciones.
type QuotationSummaryResponse struct {
	ID           int64           `json:"id"`
	Number       string          `json:"numero"`
	CreatedAt    time.Time       `json:"fecha_creacion"`
	Status       string          `json:"estado"`
	Total        decimal.Decimal `json:"valor_total"`
	ClientDNI    string          `json:"cliente_dni"`
	ClientName   string          `json:"cliente_nombre"`
	PlanName     string          `json:"plan_nombre"`
	MembersCount int             `json:"cantidad_miembros"`
}

// QuotationRefResponse resumen de la última cotización de un DNI.
type QuotationRefResponse struct {
	ID            int64     `json:"cotizacion_id"`
	CreatedAt     time.Time `json:"fecha_creacion"`
	Status        string    `json:"estado"`
	PlanName      string    `json:"plan_nombre"`
	AdvisorLegajo int64     `json:"asesor_legajo"`
	AdvisorName   string    `json:"asesor_nombre"`
}

// VerifyDNIResponse resultado de la verificación de cartera.
type VerifyDNIResponse struct {
	Exists        bool                  `json:"exists"`
	QuotedByMe    bool                  `json:"quoted_by_me"`
	Client        *ClientResponse       `json:"cliente,omitempty"`
	LastQuotation *QuotationRefResponse `json:"last_quotation,omitempty"`
}
