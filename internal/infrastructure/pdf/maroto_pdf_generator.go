// Package pdf genera el reporte impreso del kardex de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Produto + código     │  Período + fecha emisión     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Estoque atual | Variação no período               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Data | Operação | Doc | Qtd | V.Unit | Subtotal | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda sobre saldo relativo a la ventana           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorOut     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera el kardex en PDF usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateKardexPDF(_ context.Context, k *dto.KardexResponse) ([]byte, error) {
	if k == nil {
		return nil, fmt.Errorf("pdf: kardex nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex - "+k.Product.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(k, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(k))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(k.Entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(k.Entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(k))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + código (izq) y período + emisión (der).
func headerRow(k *dto.KardexResponse, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(k.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   ID: %s", nonEmpty(k.Product.Code, "—"), k.Product.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(k), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitido em: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: stock almacenado y variación neta mostrados por separado.
func summaryRow(k *dto.KardexResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6})
	}
	return row.New(14).Add(
		col.New(4).Add(label("ESTOQUE ATUAL"), value(formatDecimal(k.CurrentQuantity, 2))),
		col.New(4).Add(label("VARIAÇÃO NO PERÍODO"), value(signed(k.NetChangeInPeriod))),
		col.New(4).Add(label("MOVIMENTAÇÕES"), value(fmt.Sprintf("%d", len(k.Entries)))),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Operação", 2, align.Left),
		h("Documento", 2, align.Left),
		h("Qtd.", 1, align.Right),
		h("V. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
		h("Saldo", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por entrada, más reciente primero.
func tableDetailRows(entries []dto.KardexEntryDTO) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		qtyColor := colorPrimary
		qty := formatDecimal(e.Quantity, 2)
		if e.Direction == "SAIDA" {
			qtyColor = colorOut
			qty = "-" + qty
		}
		unit := "—"
		if e.UnitValue != nil {
			unit = "R$ " + formatDecimal(*e.UnitValue, 2)
		}
		date := "—"
		if !e.Date.IsZero() {
			date = e.Date.Format("02/01/2006 15:04")
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(date, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(e.Operation, e.OperationKind), props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(e.DocumentNumber, "—"), props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(1).Add(text.New(qty, props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1, Color: qtyColor})),
			col.New(2).Add(text.New(unit, props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("R$ "+formatDecimal(e.Subtotal, 2), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatDecimal(e.Balance, 2), props.Text{
				Style: fontstyle.Bold, Size: 7.5, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow(k *dto.KardexResponse) core.Row {
	legend := "Saldo calculado sobre todo o histórico do produto."
	if !k.FullHistory {
		legend = "Saldo relativo ao período selecionado: começa em zero na primeira movimentação " +
			"listada e não representa o estoque absoluto."
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(legend, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(k *dto.KardexResponse) string {
	if k.FullHistory {
		return "Histórico completo"
	}
	return fmt.Sprintf("%s a %s", isoToBR(k.From, "início"), isoToBR(k.To, "hoje"))
}

func isoToBR(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return *s
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + formatDecimal(d, 2)
	}
	return formatDecimal(d, 2)
}

// formatDecimal formato pt-BR con separador de miles.
// Ej: 1234567.5 → "1.234.567,50", -12 → "-12,00"
func formatDecimal(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+int(places)+2)
	if d.IsNegative() && !d.Round(places).IsZero() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return string(buf)
}
