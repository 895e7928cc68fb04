package pricing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type priceKey struct {
	list pricing.IncomeType
	band pricing.BandKey
}

type fakePrices struct {
	mu     sync.Mutex
	prices map[priceKey]decimal.Decimal
	err    error
	calls  []priceKey
}

func newFakePrices() *fakePrices {
	return &fakePrices{prices: map[priceKey]decimal.Decimal{}}
}

func (f *fakePrices) set(list pricing.IncomeType, band pricing.BandKey, price string) *fakePrices {
	f.prices[priceKey{list, band}] = decimal.RequireFromString(price)
	return f
}

func (f *fakePrices) FindPrice(_ context.Context, _ int64, list pricing.IncomeType, band pricing.BandKey) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := priceKey{list, band}
	f.calls = append(f.calls, k)
	if f.err != nil {
		return decimal.Zero, f.err
	}
	p, ok := f.prices[k]
	if !ok {
		return decimal.Zero, fmt.Errorf("precio %s/%s: %w", list, band, domain.ErrNotFound)
	}
	return p, nil
}

type fakeContributions struct {
	byCategory    map[pricing.MonotributoCategory]decimal.Decimal
	adherent      *decimal.Decimal
	adherentCalls int
}

func (f *fakeContributions) FindContributionByCategory(_ context.Context, c pricing.MonotributoCategory) (decimal.Decimal, error) {
	v, ok := f.byCategory[c]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeContributions) FindAdherentContribution(_ context.Context) (decimal.Decimal, error) {
	f.adherentCalls++
	if f.adherent == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return *f.adherent, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: esperado %s, obtenido %s", field, want, got)
}

func baseInput(t pricing.IncomeType) pricing.QuotationInput {
	return pricing.QuotationInput{
		PlanID:                1,
		IncomeType:            t,
		CommercialDiscountPct: decimal.Zero,
		AffinityDiscountPct:   decimal.Zero,
		CardDiscountPct:       decimal.Zero,
	}
}

// ─── Escenarios ───────────────────────────────────────────────────────────────

func TestCalculate_VoluntarioSinDescuentos(t *testing.T) {
	prices := newFakePrices().
		set(pricing.IncomeVoluntary, pricing.Band26To35, "10000").
		set(pricing.IncomeVoluntary, pricing.BandChild2To20, "5000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	members := []pricing.FamilyMember{member(pricing.RoleHolder, 30), member(pricing.RoleChild, 10)}
	out, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary), members)
	require.NoError(t, err)

	r := out.Result
	assertDec(t, "15000", r.BasePrice, "base")
	assertDec(t, "0", r.YoungDiscountPct, "joven")
	assertDec(t, "15000", r.Subtotal, "subtotal")
	assertDec(t, "1575", r.VATAmount, "iva")
	assertDec(t, "16575", r.Total, "total")

	require.Len(t, out.Members, 2)
	assertDec(t, "10000", out.Members[0].UnitPrice, "titular")
	assertDec(t, "5000", out.Members[1].UnitPrice, "hijo")
}

func TestCalculate_VoluntarioTitularJovenAplicaDescuentoAutomatico(t *testing.T) {
	prices := newFakePrices().
		set(pricing.IncomeVoluntary, pricing.Band0To25, "10000").
		set(pricing.IncomeVoluntary, pricing.BandChild2To20, "5000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	members := []pricing.FamilyMember{member(pricing.RoleHolder, 20), member(pricing.RoleChild, 10)}
	out, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary), members)
	require.NoError(t, err)

	r := out.Result
	assertDec(t, "15000", r.BasePrice, "base")
	assertDec(t, "30", r.YoungDiscountPct, "joven pct")
	assertDec(t, "4500", r.YoungDiscountAmount, "joven monto")
	assertDec(t, "10500", r.Subtotal, "subtotal")
	assertDec(t, "1102.5", r.VATAmount, "iva")
	assertDec(t, "11602.5", r.Total, "total")
}

func TestCalculate_ObligatorioAporteCubreTodo(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band26To35, "12000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeMandatory)
	in.SocialSecurityContribution = dec("4000")
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 30)})
	require.NoError(t, err)

	r := out.Result
	assertDec(t, "12000", r.Subtotal, "subtotal")
	assertDec(t, "133333.33", r.GrossSalaryEstimate, "sueldo bruto")
	assertDec(t, "12000", r.EstimatedContribution, "aportes")
	assertDec(t, "0", r.Total, "total")
}

func TestCalculate_ObligatorioTopeDeSueldo(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band26To35, "400000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeMandatory)
	in.SocialSecurityContribution = dec("200000")
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 30)})
	require.NoError(t, err)

	r := out.Result
	assertDec(t, "6666666.67", r.GrossSalaryEstimate, "sueldo bruto sin tope")
	assertDec(t, "315000", r.EstimatedContribution, "aportes con tope")
	assertDec(t, "85000", r.Total, "total")
}

func TestCalculate_ObligatorioAporteCoincideConSueldoBrutoGuardado(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band26To35, "900000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	// Aportes cuyo sueldo bruto tiene más de dos decimales: el aporte debe salir del bruto ya redondeado.
	for _, ss := range []string{"1234.56", "4000", "777.77", "10", "33333.33", "0.01"} {
		in := baseInput(pricing.IncomeMandatory)
		in.SocialSecurityContribution = dec(ss)
		out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 30)})
		require.NoError(t, err, ss)

		r := out.Result
		want := decimal.Min(r.GrossSalaryEstimate, pricing.SalaryCap).Mul(pricing.ContributionRate).Round(2)
		assert.True(t, want.Equal(r.EstimatedContribution),
			"aporte %s: bruto %s × 0.09 = %s, calculado %s", ss, r.GrossSalaryEstimate, want, r.EstimatedContribution)
	}
}

func TestCalculate_TopeDeDescuentosSeRechazaSinConsultarPrecios(t *testing.T) {
	prices := newFakePrices()
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeVoluntary)
	in.CommercialDiscountPct = dec("45")
	in.AffinityDiscountPct = dec("20")
	in.CardDiscountPct = dec("5")

	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 40)})
	require.Error(t, err)
	assert.Nil(t, out)

	var capErr *pricing.DiscountCapError
	require.ErrorAs(t, err, &capErr)
	assertDec(t, "70", capErr.Requested, "pedido")
	assertDec(t, "55", capErr.Cap, "tope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, prices.calls)
}

func TestCalculate_TopeIncluyeDescuentoJoven(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeVoluntary, pricing.Band0To25, "10000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})
	holder := []pricing.FamilyMember{member(pricing.RoleHolder, 22)}

	in := baseInput(pricing.IncomeVoluntary)
	in.CommercialDiscountPct = dec("30")
	_, err := calc.Calculate(context.Background(), in, holder)
	var capErr *pricing.DiscountCapError
	require.ErrorAs(t, err, &capErr)
	assertDec(t, "60", capErr.Requested, "pedido")
	assertDec(t, "50", capErr.Cap, "tope")

	in.CommercialDiscountPct = dec("20")
	in.CardDiscountPct = dec("5")
	out, err := calc.Calculate(context.Background(), in, holder)
	require.NoError(t, err)
	assertDec(t, "55", out.Result.TotalDiscountPct(), "suma aplicada")
}

func TestCalculate_DescuentosEnCascada(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeVoluntary, pricing.Band26To35, "10000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeVoluntary)
	in.AffinityDiscountPct = dec("10")
	in.CommercialDiscountPct = dec("20")
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 30)})
	require.NoError(t, err)

	r := out.Result
	assertDec(t, "1000", r.AffinityDiscountAmount, "afinidad")
	assertDec(t, "1800", r.CommercialDiscountAmount, "comercial")
	assertDec(t, "7200", r.Subtotal, "subtotal")

	in.CardDiscountPct = dec("5")
	out, err = calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 30)})
	require.NoError(t, err)
	assertDec(t, "360", out.Result.CardDiscountAmount, "tarjeta")
	assertDec(t, "6840", out.Result.Subtotal, "subtotal con tarjeta")
}

func TestCalculate_ConyugeNoConsultaPrecio(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeVoluntary, pricing.BandMarried36To40, "20000")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeVoluntary)
	in.IsMarried = true
	members := []pricing.FamilyMember{member(pricing.RoleHolder, 40), member(pricing.RoleSpouse, 38)}
	out, err := calc.Calculate(context.Background(), in, members)
	require.NoError(t, err)

	assert.Equal(t, []priceKey{{pricing.IncomeVoluntary, pricing.BandMarried36To40}}, prices.calls)
	assertDec(t, "0", out.Members[1].UnitPrice, "cónyuge")
	assertDec(t, "20000", out.Result.BasePrice, "base")
}

func TestCalculate_MiembrosDeLaMismaBandaConsultanUnaVez(t *testing.T) {
	prices := newFakePrices().
		set(pricing.IncomeVoluntary, pricing.Band26To35, "10000").
		set(pricing.IncomeVoluntary, pricing.BandChild2To20, "3000.005")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	members := []pricing.FamilyMember{
		member(pricing.RoleHolder, 30),
		member(pricing.RoleChild, 5),
		member(pricing.RoleChild, 8),
	}
	out, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary), members)
	require.NoError(t, err)

	assert.Len(t, prices.calls, 2)
	assertDec(t, "3000.01", out.Members[1].UnitPrice, "precio redondeado")
	assertDec(t, "16000.02", out.Result.BasePrice, "base")
}

func TestCalculate_MonotributoUsaListaObligatorio(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band36To40, "12000")
	adherent := dec("2000")
	contrib := &fakeContributions{
		byCategory: map[pricing.MonotributoCategory]decimal.Decimal{"B": dec("5000")},
		adherent:   &adherent,
	}
	calc := pricing.NewCalculator(prices, contrib)

	in := baseInput(pricing.IncomeMonotributo)
	in.MonotributoCategory = "B"
	in.MonotributoAdherents = 2
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 40)})
	require.NoError(t, err)

	require.Len(t, prices.calls, 1)
	assert.Equal(t, pricing.IncomeMandatory, prices.calls[0].list)
	assertDec(t, "9000", out.Result.MonotributoContribution, "aporte")
	assertDec(t, "3000", out.Result.Total, "total")
	assertDec(t, "0", out.Result.VATAmount, "sin iva")
}

func TestCalculate_MonotributoAporteNoSuperaSubtotal(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band36To40, "4000")
	adherent := dec("1500")
	contrib := &fakeContributions{
		byCategory: map[pricing.MonotributoCategory]decimal.Decimal{"K": dec("9000")},
		adherent:   &adherent,
	}
	calc := pricing.NewCalculator(prices, contrib)

	in := baseInput(pricing.IncomeMonotributo)
	in.MonotributoCategory = "K"
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 40)})
	require.NoError(t, err)

	assertDec(t, "4000", out.Result.MonotributoContribution, "aporte recortado")
	assertDec(t, "0", out.Result.Total, "total")
	assert.Equal(t, 1, contrib.adherentCalls, "la fila Adherente se resuelve aunque no haya adherentes")
}

func TestCalculate_MonotributoSinFilaAdherenteEsErrorDeConfiguracion(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band36To40, "12000")
	contrib := &fakeContributions{
		byCategory: map[pricing.MonotributoCategory]decimal.Decimal{"B": dec("5000")},
	}
	calc := pricing.NewCalculator(prices, contrib)

	in := baseInput(pricing.IncomeMonotributo)
	in.MonotributoCategory = "B"
	in.MonotributoAdherents = 0
	out, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 40)})
	require.Error(t, err)
	assert.Nil(t, out)

	var cfgErr *pricing.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "aporte_adherente", cfgErr.Lookup)
	assert.ErrorIs(t, err, domain.ErrPricingConfig)
}

// ─── Errores ──────────────────────────────────────────────────────────────────

func TestCalculate_PrecioFaltanteEsErrorDeConfiguracion(t *testing.T) {
	calc := pricing.NewCalculator(newFakePrices(), &fakeContributions{})

	out, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary),
		[]pricing.FamilyMember{member(pricing.RoleHolder, 45)})
	require.Error(t, err)
	assert.Nil(t, out)

	var cfgErr *pricing.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "precio", cfgErr.Lookup)
	assert.ErrorIs(t, err, domain.ErrPricingConfig)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculate_CategoriaMonotributoFaltante(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeMandatory, pricing.Band36To40, "4000")
	calc := pricing.NewCalculator(prices, &fakeContributions{byCategory: map[pricing.MonotributoCategory]decimal.Decimal{}})

	in := baseInput(pricing.IncomeMonotributo)
	in.MonotributoCategory = "C"
	_, err := calc.Calculate(context.Background(), in, []pricing.FamilyMember{member(pricing.RoleHolder, 40)})
	assert.ErrorIs(t, err, domain.ErrPricingConfig)
}

func TestCalculate_FalloDeAlmacenamientoSePropaga(t *testing.T) {
	boom := errors.New("conexión cerrada")
	prices := newFakePrices()
	prices.err = boom
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	_, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary),
		[]pricing.FamilyMember{member(pricing.RoleHolder, 45)})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrPricingConfig)
}

func TestCalculate_PrecioNegativoEsErrorDeConfiguracion(t *testing.T) {
	prices := newFakePrices().set(pricing.IncomeVoluntary, pricing.Band41To50, "-1")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	_, err := calc.Calculate(context.Background(), baseInput(pricing.IncomeVoluntary),
		[]pricing.FamilyMember{member(pricing.RoleHolder, 45)})
	assert.ErrorIs(t, err, domain.ErrPricingConfig)
}

func TestCalculate_ValidacionDeEntrada(t *testing.T) {
	calc := pricing.NewCalculator(newFakePrices(), &fakeContributions{})
	holder := []pricing.FamilyMember{member(pricing.RoleHolder, 30)}

	cases := []struct {
		name    string
		mutate  func(*pricing.QuotationInput)
		members []pricing.FamilyMember
		field   string
	}{
		{"plan inválido", func(in *pricing.QuotationInput) { in.PlanID = 0 }, holder, "plan_id"},
		{"tipo de ingreso", func(in *pricing.QuotationInput) { in.IncomeType = "Otro" }, holder, "tipo_ingreso"},
		{"sin miembros", nil, nil, "miembros"},
		{"parentesco", nil, []pricing.FamilyMember{member("Abuelo", 70)}, "miembros[0].parentesco"},
		{"edad negativa", nil, []pricing.FamilyMember{member(pricing.RoleHolder, -1)}, "miembros[0].edad"},
		{"edad mayor a 100", nil, []pricing.FamilyMember{member(pricing.RoleHolder, 30), member(pricing.RoleChild, 101)}, "miembros[1].edad"},
		{"comercial fuera de lista", func(in *pricing.QuotationInput) { in.CommercialDiscountPct = dec("15") }, holder, "descuento_comercial_pct"},
		{"afinidad fuera de lista", func(in *pricing.QuotationInput) { in.AffinityDiscountPct = dec("30") }, holder, "descuento_afinidad_pct"},
		{"tarjeta fuera de lista", func(in *pricing.QuotationInput) { in.CardDiscountPct = dec("10") }, holder, "descuento_tarjeta_pct"},
		{"aporte negativo", func(in *pricing.QuotationInput) { in.SocialSecurityContribution = dec("-1") }, holder, "aporte_obra_social"},
		{"monotributo sin categoría", func(in *pricing.QuotationInput) { in.IncomeType = pricing.IncomeMonotributo }, holder, "monotributo_categoria"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput(pricing.IncomeVoluntary)
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			_, err := calc.Calculate(context.Background(), in, tc.members)
			var vErr *pricing.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ─── Propiedades ──────────────────────────────────────────────────────────────

func TestCalculate_Determinista(t *testing.T) {
	prices := newFakePrices().
		set(pricing.IncomeVoluntary, pricing.BandMarried41To50, "33333.33").
		set(pricing.IncomeVoluntary, pricing.BandChild21To29, "7777.77")
	calc := pricing.NewCalculator(prices, &fakeContributions{})

	in := baseInput(pricing.IncomeVoluntary)
	in.IsMarried = true
	in.AffinityDiscountPct = dec("20")
	in.CommercialDiscountPct = dec("30")
	in.CardDiscountPct = dec("5")
	members := []pricing.FamilyMember{member(pricing.RoleHolder, 45), member(pricing.RoleSpouse, 44), member(pricing.RoleChild, 22)}

	first, err := calc.Calculate(context.Background(), in, members)
	require.NoError(t, err)
	second, err := calc.Calculate(context.Background(), in, members)
	require.NoError(t, err)
	assert.Equal(t, first.Result.Total.String(), second.Result.Total.String())
	assert.Equal(t, first.Result.Subtotal.String(), second.Result.Subtotal.String())
}

func TestCalculate_TotalNuncaNegativoYDescuentosDentroDelTope(t *testing.T) {
	prices := newFakePrices()
	for _, list := range []pricing.IncomeType{pricing.IncomeMandatory, pricing.IncomeVoluntary} {
		for _, b := range pricing.AllBandKeys() {
			prices.set(list, b, "18765.43")
		}
	}
	adherent := dec("9999")
	contrib := &fakeContributions{byCategory: map[pricing.MonotributoCategory]decimal.Decimal{}, adherent: &adherent}
	for _, c := range pricing.MonotributoCategories {
		contrib.byCategory[c] = dec("15000")
	}
	calc := pricing.NewCalculator(prices, contrib)

	groups := [][]pricing.FamilyMember{
		{member(pricing.RoleHolder, 24)},
		{member(pricing.RoleHolder, 50), member(pricing.RoleSpouse, 48), member(pricing.RoleChild, 12)},
	}
	for _, it := range []pricing.IncomeType{pricing.IncomeMandatory, pricing.IncomeVoluntary, pricing.IncomeMonotributo} {
		for _, com := range pricing.CommercialDiscounts {
			for _, aff := range pricing.AffinityDiscounts {
				for _, card := range pricing.CardDiscounts {
					for gi, members := range groups {
						in := baseInput(it)
						in.IsMarried = gi == 1
						in.CommercialDiscountPct = com
						in.AffinityDiscountPct = aff
						in.CardDiscountPct = card
						in.SocialSecurityContribution = dec("2500.5")
						in.MonotributoCategory = "D"
						in.MonotributoAdherents = 1

						out, err := calc.Calculate(context.Background(), in, members)
						if err != nil {
							var capErr *pricing.DiscountCapError
							require.ErrorAs(t, err, &capErr)
							continue
						}
						r := out.Result
						assert.False(t, r.Total.IsNegative())
						assert.False(t, r.Subtotal.IsNegative())
						assert.True(t, r.TotalDiscountPct().LessThanOrEqual(pricing.DiscountCapFor(card)))
						assert.True(t, r.Total.Equal(r.Total.Round(2)))
					}
				}
			}
		}
	}
}
