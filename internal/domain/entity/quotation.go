package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// Estados de una cotización.
const (
	QuotationStatusQuoted = "cotizado"
)

// QuotationValidity días de vigencia desde la emisión.
const QuotationValidity = 15 * 24 * time.Hour

// Quotation cotización persistida: la entrada del asesor, el resultado del motor y sus miembros.
type Quotation struct {
	ID            int64
	ClientID      int64
	AdvisorLegajo int64
	PlanID        int64
	Input         pricing.QuotationInput
	Result        pricing.QuotationResult
	Status        string
	Active        bool
	Members       []QuotationMember
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Datos de solo lectura resueltos por join.
	ClientDNI   string
	ClientName  string
	PlanName    string
	AdvisorName string
}

// QuotationMember miembro cotizado con su precio unitario.
type QuotationMember struct {
	ID          int64
	QuotationID int64
	Role        pricing.Role
	Age         int
	UnitPrice   decimal.Decimal
}

// Number número visible de la cotización: año de emisión y el id con 6 dígitos (ej. 2025-000123).
func (q *Quotation) Number() string {
	return fmt.Sprintf("%d-%06d", q.CreatedAt.Year(), q.ID)
}

// ExpiresAt fin de vigencia.
func (q *Quotation) ExpiresAt() time.Time {
	return q.CreatedAt.Add(QuotationValidity)
}

// CoverageStart inicio de cobertura: primer día del mes siguiente a la emisión.
func (q *Quotation) CoverageStart() time.Time {
	y, m, _ := q.CreatedAt.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, q.CreatedAt.Location())
}

// QuotationRef resumen de la última cotización activa de un DNI (verificación de cartera).
type QuotationRef struct {
	ID            int64
	CreatedAt     time.Time
	Status        string
	PlanName      string
	AdvisorLegajo int64
	AdvisorName   string
}

// QuotationSummary fila del listado de cotizaciones de un asesor.
type QuotationSummary struct {
	ID           int64
	CreatedAt    time.Time
	Status       string
	Total        decimal.Decimal
	ClientDNI    string
	ClientName   string
	PlanName     string
	MembersCount int
}
