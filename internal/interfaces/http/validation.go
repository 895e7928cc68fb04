package http

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

var dniRe = regexp.MustCompile(`^\d{7,9}$`)

type fieldErrors []dto.FieldError

func (f *fieldErrors) add(field, format string, args ...any) {
	*f = append(*f, dto.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f fieldErrors) respond(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "datos de la cotización inválidos",
		Errors:  f,
	})
}

// validateQuotationRequest reglas de entrada de una cotización. Se informan todos los campos
// inválidos a la vez; las reglas de negocio (tope de descuentos, bandas) las resuelve el motor.
func validateQuotationRequest(req dto.QuotationRequest, requireClient bool) fieldErrors {
	var errs fieldErrors

	if requireClient {
		switch {
		case req.Client == nil:
			errs.add("clienteData", "es requerido")
		default:
			if !dniRe.MatchString(strings.TrimSpace(req.Client.DNI)) {
				errs.add("clienteData.dni", "debe ser numérico de 7 a 9 dígitos")
			}
			if strings.TrimSpace(req.Client.FirstNames) == "" {
				errs.add("clienteData.nombres", "es requerido")
			}
			if strings.TrimSpace(req.Client.LastNames) == "" {
				errs.add("clienteData.apellidos", "es requerido")
			}
			if req.Client.Email != "" {
				if _, err := mail.ParseAddress(req.Client.Email); err != nil {
					errs.add("clienteData.email", "no es un email válido")
				}
			}
		}
	}

	data := req.Quotation
	const q = "cotizacionData."
	if data.PlanID < 1 {
		errs.add(q+"plan_id", "debe ser un entero mayor o igual a 1")
	}
	incomeType := pricing.IncomeType(data.IncomeType)
	if !incomeType.Valid() {
		errs.add(q+"tipo_ingreso", "debe ser %s, %s o %s", pricing.IncomeMandatory, pricing.IncomeVoluntary, pricing.IncomeMonotributo)
	}
	if data.IsMarried == nil {
		errs.add(q+"es_casado", "es requerido")
	}

	checkSet(&errs, q+"descuento_comercial_pct", data.CommercialDiscountPct, pricing.CommercialDiscounts)
	checkSet(&errs, q+"descuento_afinidad_pct", data.AffinityDiscountPct, pricing.AffinityDiscounts)
	checkSet(&errs, q+"descuento_tarjeta_pct", data.CardDiscountPct, pricing.CardDiscounts)

	switch incomeType {
	case pricing.IncomeMandatory:
		if !data.SocialSecurityContribution.IsPositive() {
			errs.add(q+"aporte_obra_social", "debe ser mayor a 0 para %s", pricing.IncomeMandatory)
		}
	case pricing.IncomeMonotributo:
		cat := pricing.MonotributoCategory(strings.ToUpper(strings.TrimSpace(data.MonotributoCategory)))
		if !cat.Valid() {
			errs.add(q+"monotributo_categoria", "es requerida (A a K) para %s", pricing.IncomeMonotributo)
		}
		if data.MonotributoAdherents < 0 {
			errs.add(q+"monotributo_adherentes", "no puede ser negativo")
		}
	}

	if len(req.Members) == 0 {
		errs.add("miembrosData", "debe incluir al menos un miembro")
	}
	for i, m := range req.Members {
		field := fmt.Sprintf("miembrosData[%d]", i)
		if !pricing.Role(m.Role).Valid() {
			errs.add(field+".parentesco", "debe ser %s, %s o %s", pricing.RoleHolder, pricing.RoleSpouse, pricing.RoleChild)
		}
		age, ok := m.Age.Int()
		switch {
		case !m.Age.Present():
			errs.add(field+".edad", "es requerida")
		case !ok:
			errs.add(field+".edad", "debe ser un número entero")
		case age < 0 || age > pricing.MaxMemberAge:
			errs.add(field+".edad", "debe estar entre 0 y %d", pricing.MaxMemberAge)
		}
	}
	return errs
}

func checkSet(errs *fieldErrors, field string, v decimal.Decimal, allowed []decimal.Decimal) {
	for _, a := range allowed {
		if a.Equal(v) {
			return
		}
	}
	vals := make([]string, 0, len(allowed))
	for _, a := range allowed {
		vals = append(vals, a.String())
	}
	errs.add(field, "debe ser uno de %s", strings.Join(vals, ", "))
}
