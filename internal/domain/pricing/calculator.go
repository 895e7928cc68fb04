package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// PriceLookup puerto de consulta de la lista de precios (plan × lista × banda → precio unitario).
// Debe devolver un error que envuelva domain.ErrNotFound si no hay fila activa.
type PriceLookup interface {
	FindPrice(ctx context.Context, planID int64, list IncomeType, band BandKey) (decimal.Decimal, error)
}

// ContributionLookup puerto de consulta de la tabla de aportes de monotributo.
type ContributionLookup interface {
	FindContributionByCategory(ctx context.Context, category MonotributoCategory) (decimal.Decimal, error)
	FindAdherentContribution(ctx context.Context) (decimal.Decimal, error)
}

// Calculator orquesta el cálculo completo de una cotización.
// Es seguro para uso concurrente: no guarda estado entre llamadas.
type Calculator struct {
	prices        PriceLookup
	contributions ContributionLookup
}

// NewCalculator construye el motor con sus dos tablas de consulta.
func NewCalculator(prices PriceLookup, contributions ContributionLookup) *Calculator {
	return &Calculator{prices: prices, contributions: contributions}
}

// Calculate valida la entrada, cotiza cada miembro, aplica descuentos en cascada y el ajuste
// del tipo de ingreso. Si devuelve error no hay resultado parcial.
//
// El tope de descuentos se controla antes de consultar precios: no depende de ellos y así un
// pedido inválido no llega a la base.
func (c *Calculator) Calculate(ctx context.Context, in QuotationInput, members []FamilyMember) (*Calculation, error) {
	if err := ValidateInput(in, members); err != nil {
		return nil, err
	}

	young := YoungDiscountFor(members, in)
	if err := CheckDiscountCap(in.CommercialDiscountPct, in.AffinityDiscountPct, young, in.CardDiscountPct); err != nil {
		return nil, err
	}

	priced, base, err := c.priceMembers(ctx, in, members)
	if err != nil {
		return nil, err
	}

	res := QuotationResult{
		BasePrice:             base,
		CommercialDiscountPct: in.CommercialDiscountPct,
		AffinityDiscountPct:   in.AffinityDiscountPct,
		YoungDiscountPct:      young,
		CardDiscountPct:       in.CardDiscountPct,
	}
	applyDiscounts(&res)

	switch in.IncomeType {
	case IncomeMandatory:
		applyMandatory(&res, in.SocialSecurityContribution)
	case IncomeMonotributo:
		if err := c.applyMonotributo(ctx, &res, in); err != nil {
			return nil, err
		}
	default:
		applyVoluntary(&res)
	}

	if res.Total.IsNegative() {
		res.Total = decimal.Zero
	}
	res.Total = round2(res.Total)

	return &Calculation{Input: in, Result: res, Members: priced}, nil
}

// priceMembers cotiza cada miembro; el cónyuge vale 0 y no consulta la lista.
func (c *Calculator) priceMembers(ctx context.Context, in QuotationInput, members []FamilyMember) ([]FamilyMember, decimal.Decimal, error) {
	list := PriceListFor(in.IncomeType)
	cache := make(map[BandKey]decimal.Decimal, len(members))
	priced := make([]FamilyMember, 0, len(members))
	base := decimal.Zero

	for _, m := range members {
		price := decimal.Zero
		if band, ok := TranslateBand(m.Age, m.Role, in.IsMarried); ok {
			cached, hit := cache[band]
			if !hit {
				p, err := c.prices.FindPrice(ctx, in.PlanID, list, band)
				if err != nil {
					return nil, decimal.Zero, lookupError("precio", fmt.Sprintf("plan=%d lista=%s rango=%s", in.PlanID, list, band), err)
				}
				if p.IsNegative() {
					return nil, decimal.Zero, &ConfigError{Lookup: "precio", Key: string(band), Err: fmt.Errorf("precio negativo %s", p)}
				}
				cached = round2(p)
				cache[band] = cached
			}
			price = cached
		}
		base = base.Add(price)
		priced = append(priced, FamilyMember{Role: m.Role, Age: m.Age, UnitPrice: price})
	}
	return priced, round2(base), nil
}

// applyDiscounts aplica los descuentos en cascada sobre el remanente, en orden fijo:
// afinidad, comercial, joven, tarjeta.
func applyDiscounts(res *QuotationResult) {
	remainder := res.BasePrice
	step := func(pct decimal.Decimal) decimal.Decimal {
		amount := round2(remainder.Mul(pct).Div(hundred))
		remainder = remainder.Sub(amount)
		return amount
	}
	res.AffinityDiscountAmount = step(res.AffinityDiscountPct)
	res.CommercialDiscountAmount = step(res.CommercialDiscountPct)
	res.YoungDiscountAmount = step(res.YoungDiscountPct)
	res.CardDiscountAmount = step(res.CardDiscountPct)
	res.Subtotal = round2(remainder)
}

// applyMandatory estima el sueldo bruto a partir del aporte a obra social (3%) y descuenta
// el 9% del sueldo, con tope de sueldo y sin superar el subtotal.
func applyMandatory(res *QuotationResult, socialSecurity decimal.Decimal) {
	gross := decimal.Zero
	if socialSecurity.GreaterThan(decimal.Zero) {
		gross = round2(socialSecurity.Div(SocialSecurityRate))
	}
	capped := decimal.Min(gross, SalaryCap)
	contribution := decimal.Min(round2(capped.Mul(ContributionRate)), res.Subtotal)

	res.GrossSalaryEstimate = gross
	res.EstimatedContribution = contribution
	res.Total = res.Subtotal.Sub(res.EstimatedContribution)
}

func (c *Calculator) applyMonotributo(ctx context.Context, res *QuotationResult, in QuotationInput) error {
	category, err := c.contributions.FindContributionByCategory(ctx, in.MonotributoCategory)
	if err != nil {
		return lookupError("aporte_categoria", string(in.MonotributoCategory), err)
	}
	if category.IsNegative() {
		return &ConfigError{Lookup: "aporte_categoria", Key: string(in.MonotributoCategory), Err: fmt.Errorf("aporte negativo %s", category)}
	}

	// La fila Adherente se resuelve siempre: si falta, la tabla de aportes está incompleta
	// aunque esta cotización no tenga adherentes.
	adherent, err := c.contributions.FindAdherentContribution(ctx)
	if err != nil {
		return lookupError("aporte_adherente", "Adherente", err)
	}
	if adherent.IsNegative() {
		return &ConfigError{Lookup: "aporte_adherente", Key: "Adherente", Err: fmt.Errorf("aporte negativo %s", adherent)}
	}
	total := category.Add(adherent.Mul(decimal.NewFromInt(int64(in.MonotributoAdherents))))

	res.MonotributoContribution = round2(decimal.Min(total, res.Subtotal))
	res.Total = res.Subtotal.Sub(res.MonotributoContribution)
	return nil
}

func applyVoluntary(res *QuotationResult) {
	res.VATAmount = round2(res.Subtotal.Mul(VATRate))
	res.Total = res.Subtotal.Add(res.VATAmount)
}

// lookupError clasifica los fallos de las tablas: un faltante es error de configuración;
// cualquier otro (ej. base caída) se propaga con contexto.
func lookupError(lookup, key string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &ConfigError{Lookup: lookup, Key: key, Err: err}
	}
	return fmt.Errorf("consultar %s [%s]: %w", lookup, key, err)
}
