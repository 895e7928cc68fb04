// Package pdf genera el documento de cotización que el asesor entrega al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SIGEC + Plan          │  N° Cotización + Fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + DNI  │  ASESOR                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Parentesco | Edad | Valor individual                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: base / descuentos / ajuste / TOTAL MENSUAL        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PLAN: detalles + condiciones generales                      │
//	│  FOOTER: QR con el número + vigencia                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/sigec-api/internal/application/quotation"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

var _ quotation.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 94, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var moneyPrinter = message.NewPrinter(language.MustParse("es-AR"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa quotation.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(q *entity.Quotation, plan *entity.Plan) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+q.Number(), true).
		WithAuthor("SIGEC", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q, plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(memberRows(q.Members)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(breakdownRows(q.Input, q.Result)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(planRows(plan)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(q))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(q *entity.Quotation, plan *entity.Plan) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New("SIGEC", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(plan.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+q.Number(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Emisión: "+q.CreatedAt.Format("02/01/2006")+"   Vence: "+q.ExpiresAt().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Inicio de cobertura: "+q.CoverageStart().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

func partiesRow(q *entity.Quotation) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(q.ClientName, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("DNI: "+nonEmpty(q.ClientDNI, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ASESOR", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(q.AdvisorName, "-"), props.Text{Size: 10, Align: align.Right, Top: 6}),
			text.New("Legajo "+strconv.FormatInt(q.AdvisorLegajo, 10), props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Parentesco", 6, align.Left),
		h("Edad", 2, align.Center),
		h("Valor individual", 4, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func memberRows(members []entity.QuotationMember) []core.Row {
	rows := make([]core.Row, 0, len(members))
	for _, mb := range members {
		price := FormatMoney(mb.UnitPrice)
		if mb.Role == pricing.RoleSpouse {
			price = "incluido"
		}
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(string(mb.Role), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(mb.Age), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(price, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// breakdownRows desglose del precio; solo se muestran los descuentos y ajustes aplicados.
func breakdownRows(in pricing.QuotationInput, res pricing.QuotationResult) []core.Row {
	amountRow := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2})),
			col.New(3).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Right: 1})),
		)
	}
	discount := func(label string, pct, amount decimal.Decimal) (core.Row, bool) {
		if pct.IsZero() {
			return nil, false
		}
		return amountRow(fmt.Sprintf("%s (%s%%):", label, pct.String()), "-"+FormatMoney(amount)), true
	}

	rows := []core.Row{amountRow("Valor base del plan:", FormatMoney(res.BasePrice))}
	for _, d := range []struct {
		label  string
		pct    decimal.Decimal
		amount decimal.Decimal
	}{
		{"Desc. afinidad", res.AffinityDiscountPct, res.AffinityDiscountAmount},
		{"Desc. comercial", res.CommercialDiscountPct, res.CommercialDiscountAmount},
		{"Desc. joven", res.YoungDiscountPct, res.YoungDiscountAmount},
		{"Desc. tarjeta", res.CardDiscountPct, res.CardDiscountAmount},
	} {
		if r, ok := discount(d.label, d.pct, d.amount); ok {
			rows = append(rows, r)
		}
	}
	rows = append(rows, amountRow("Subtotal:", FormatMoney(res.Subtotal)))

	switch in.IncomeType {
	case pricing.IncomeMandatory:
		rows = append(rows, amountRow("Aportes estimados:", "-"+FormatMoney(res.EstimatedContribution)))
	case pricing.IncomeMonotributo:
		rows = append(rows, amountRow("Aporte monotributo:", "-"+FormatMoney(res.MonotributoContribution)))
	default:
		rows = append(rows, amountRow("IVA 10,5%:", FormatMoney(res.VATAmount)))
	}

	rows = append(rows, row.New(9).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL MENSUAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(FormatMoney(res.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	))
	return rows
}

func planRows(plan *entity.Plan) []core.Row {
	var rows []core.Row
	section := func(title, body string) {
		if body == "" {
			return
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)))
		rows = append(rows, text.NewAutoRow(body, props.Text{Size: 7.5, Color: colorGray, Top: 1, Bottom: 2}))
	}
	section("DETALLES DEL PLAN", plan.Details)
	section("CONDICIONES GENERALES", plan.GeneralConditions)
	return rows
}

func footerRow(q *entity.Quotation) core.Row {
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(q.Number(), props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Cotización N° "+q.Number(), props.Text{Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3}),
			text.New("Valores mensuales expresados en pesos argentinos. La cotización tiene una vigencia de 15 días "+
				"desde su emisión y está sujeta a la aprobación de la declaración jurada de salud.", props.Text{
				Size: 7, Top: 13, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// FormatMoney formatea un monto en pesos con separadores es-AR. Ej: 16575.5 → "$ 16.575,50".
func FormatMoney(d decimal.Decimal) string {
	return "$ " + moneyPrinter.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
